package get_day_schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case расписания дня: сетка слотов, сверенная с записями
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

// Execute выполняет use case получения расписания дня.
// Чистая производная от (дата, фильтр мастера, записи): без побочных
// эффектов, повторный вызов с теми же данными дает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s, stylist=%v",
		req.Date.Format(domain.DateFormat), req.Stylist)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var stylist *string
	if req.Stylist != nil {
		name := strings.TrimSpace(*req.Stylist)
		if name == "" {
			return nil, fmt.Errorf("%w: stylist must not be blank", ErrInvalidInput)
		}
		if !uc.salon.HasStylist(name) {
			uc.logger.Warn("GetDaySchedule: stylist %q not in roster", name)
			return nil, ErrStylistNotFound
		}
		stylist = &name
	}

	// 2. Генерируем сетку слотов
	slots := uc.salon.Policy().GenerateSlots(req.Date)

	// 3. Выходной: явный пустой случай, записи не запрашиваем
	if !domain.IsWorkingDay(req.Date) {
		uc.logger.Info("GetDaySchedule: %s is a non-working day", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:       req.Date,
			Stylist:    stylist,
			WorkingDay: false,
			Entries:    []Entry{},
		}, nil
	}

	// 4. Записи на дату (и мастера, если фильтр активен)
	filter := domain.AppointmentsFilter{
		Date:    ptr.Ptr(req.Date),
		Stylist: stylist,
	}

	appointments, err := uc.apptRepo.GetAllWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Сверяем сетку с записями
	resp := &Response{
		Date:       req.Date,
		Stylist:    stylist,
		WorkingDay: true,
		Entries:    resolveEntries(slots, appointments),
	}

	uc.logger.Info("GetDaySchedule: date=%s, slots=%d, occupied=%d",
		req.Date.Format(domain.DateFormat), len(resp.Entries), resp.OccupiedCount())

	return resp, nil
}
