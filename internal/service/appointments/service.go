package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов:
// чтение, правка контактных данных, удаление.
// Создание записи проходит через usecase create_appointment
// (там проверка занятости слота и транзакция).
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с опциональной фильтрацией по дате и мастеру.
// Выдача упорядочена по дате и времени начала (как в исходном API).
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := "List: fetching appointments"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Stylist != nil {
		logMsg += fmt.Sprintf(", stylist=%s", *req.Stylist)
	}
	s.logger.Info(logMsg)

	filter := domain.AppointmentsFilter{
		Date:    req.Date,
		Stylist: req.Stylist,
	}

	list, err := s.repo.GetAllWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// Update правит контактные данные и/или статус записи.
// Телефон нормализуется так же, как при создании. Дата, время и мастер
// не меняются, поэтому доступность слота не перепроверяется.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s", id)

	update, err := s.buildUpdate(req)
	if err != nil {
		s.logger.Warn("Update: invalid update for appointment id=%s: %v", id, err)
		return nil, err
	}

	appt, err := s.repo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrEmptyUpdate):
			s.logger.Warn("Update: empty update for appointment id=%s", id)
			return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
		default:
			s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)
	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// buildUpdate валидирует запрос и собирает доменное обновление
func (s *Service) buildUpdate(req *models.UpdateAppointmentRequest) (domain.AppointmentUpdate, error) {
	var update domain.AppointmentUpdate

	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return update, fmt.Errorf("%w: client name must not be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxClientNameLength {
			return update, fmt.Errorf("%w: client name is too long", ErrInvalidInput)
		}
		update.ClientName = &name
	}

	if req.ClientPhone != nil {
		phone := domain.NormalizePhone(*req.ClientPhone)
		if len(phone) < domain.MinPhoneDigits {
			return update, fmt.Errorf("%w: client phone must contain at least %d digits",
				ErrInvalidInput, domain.MinPhoneDigits)
		}
		update.ClientPhone = &phone
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return update, ErrInvalidStatus
		}
		update.Status = &status
	}

	if update.IsEmpty() {
		return update, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	return update, nil
}
