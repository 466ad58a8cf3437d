package get_config

import "github.com/m04kA/SMC-SalonService/internal/domain"

type SalonService interface {
	Stylists() []string
	Policy() domain.SchedulePolicy
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
