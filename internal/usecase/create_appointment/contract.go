package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetAllWithFilter получает записи по фильтру; внутри транзакции
	// выборка на конкретную дату блокирует строки (FOR UPDATE)
	GetAllWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SalonConfig интерфейс конфигурации салона (состав мастеров и сетка слотов)
type SalonConfig interface {
	Policy() domain.SchedulePolicy
	HasStylist(name string) bool
	DefaultStylist() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
