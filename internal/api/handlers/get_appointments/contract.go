package get_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
