package get_calendar_summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case сводки занятости по диапазону дат календаря.
// Выполняется один раз на видимый диапазон, не на каждую ячейку:
// одна выборка записей и одна генерация сетки на день.
type UseCase struct {
	apptRepo AppointmentRepository
	salon    SalonConfig
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, salon SalonConfig, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		salon:    salon,
		logger:   logger,
	}
}

// Execute выполняет use case сводки по диапазону [From, To).
// Чистая производная от входных данных: повторный вызов с теми же
// записями дает идентичный результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarSummary: from=%s, to=%s, stylist=%v",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Stylist)

	// 1. Валидация диапазона
	if err := validateRange(req.From, req.To); err != nil {
		uc.logger.Warn("GetCalendarSummary: range validation failed: %v", err)
		return nil, err
	}

	var filter *string
	if req.Stylist != nil {
		name := strings.TrimSpace(*req.Stylist)
		if name == "" {
			return nil, fmt.Errorf("%w: stylist must not be blank", ErrInvalidInput)
		}
		if !uc.salon.HasStylist(name) {
			uc.logger.Warn("GetCalendarSummary: stylist %q not in roster", name)
			return nil, ErrStylistNotFound
		}
		filter = &name
	}

	// 2. Одна выборка записей на весь диапазон
	appointments, err := uc.apptRepo.GetAllWithFilter(ctx, domain.AppointmentsFilter{
		DateFrom: ptr.Ptr(req.From),
		DateTo:   ptr.Ptr(req.To),
	})
	if err != nil {
		uc.logger.Error("GetCalendarSummary: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Индексируем и агрегируем
	index := buildOccupancyIndex(appointments)
	days := summarizeRange(uc.salon.Policy(), req.From, req.To, uc.salon.Stylists(), filter, index)

	uc.logger.Info("GetCalendarSummary: summarized %d days from %d appointments",
		len(days), len(appointments))

	return &Response{
		From: req.From,
		To:   req.To,
		Days: days,
	}, nil
}

// validateRange проверяет полуоткрытый диапазон [from, to)
func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !from.Before(to) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}

	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, maxRangeDays)
	}

	return nil
}
