package get_calendar_summary

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetAllWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SalonConfig интерфейс конфигурации салона
type SalonConfig interface {
	Policy() domain.SchedulePolicy
	Stylists() []string
	HasStylist(name string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
