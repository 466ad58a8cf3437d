package widget

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/appointmentstore"
)

// StoreClient клиент магазина записей (внешний авторитетный источник)
type StoreClient interface {
	GetConfigWithGracefulDegradation(ctx context.Context) (*appointmentstore.SalonConfig, error)
	ListAppointmentsWithGracefulDegradation(ctx context.Context, date string, stylist *string) (*appointmentstore.AppointmentList, error)
	CreateAppointment(ctx context.Context, req *appointmentstore.CreateAppointmentRequest) (*appointmentstore.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req *appointmentstore.UpdateAppointmentRequest) (*appointmentstore.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Notifier канал транзиентных сообщений пользователю (тосты)
type Notifier interface {
	Notify(message string)
}

// Renderer перерисовывает интерфейс по снимку состояния сессии
type Renderer interface {
	Render(view View)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
