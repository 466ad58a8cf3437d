package get_calendar_summary

import (
	"context"

	getCalendarSummary "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar_summary"
)

type GetCalendarSummaryUseCase interface {
	Execute(ctx context.Context, req *getCalendarSummary.Request) (*getCalendarSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
