package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для создания записи клиента.
// Авторитетная точка проверки конфликтов: UI бронирует оптимистично,
// окончательное решение принимается здесь.
type UseCase struct {
	apptRepo  AppointmentRepository
	salon     SalonConfig
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	salon SalonConfig,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:  apptRepo,
		salon:     salon,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи.
// Использует сериализуемую транзакцию для предотвращения гонки за слот:
// две конкурирующие брони одного слота - ровно один победитель.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, stylist=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Stylist)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем мастера: явный или первый в составе
	// (исходный бэкенд подставлял STYLISTS[0] при отсутствии)
	stylist := uc.salon.DefaultStylist()
	if req.Stylist != nil {
		stylist = strings.TrimSpace(*req.Stylist)
	}

	if !uc.salon.HasStylist(stylist) {
		uc.logger.Warn("CreateAppointment: stylist %q not in roster", stylist)
		return nil, ErrStylistNotFound
	}

	// 3. Проверяем, что запрошенное время - действительный слот сетки
	if err := validateSlot(uc.salon.Policy(), req.Date, req.StartTime); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Проверка занятости и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Записи мастера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			Date:    ptr.Ptr(req.Date),
			Stylist: &stylist,
		}

		existing, err := uc.apptRepo.GetAllWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.2. Конфликт только внутри одного мастера: другой мастер
		// в том же слоте - не конфликт
		if slotIsTaken(existing, req.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken by stylist %s",
				req.Date.Format(domain.DateFormat), req.StartTime, stylist)
			return ErrSlotTaken
		}

		// 4.3. Создаем запись
		appt := &domain.Appointment{
			ID:          uuid.New(),
			Date:        req.Date,
			StartTime:   req.StartTime,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: domain.NormalizePhone(req.ClientPhone),
			Stylist:     stylist,
			Status:      domain.StatusPending,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс - последний рубеж против гонки
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique index rejected slot %s %s for stylist %s",
					req.Date.Format(domain.DateFormat), req.StartTime, stylist)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:          result.ID.String(),
		Date:        result.Date,
		StartTime:   result.StartTime,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		Stylist:     result.Stylist,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
