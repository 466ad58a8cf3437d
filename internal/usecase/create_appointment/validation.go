package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Имя и телефон обязательны после обрезки пробелов; дата и время должны
// быть заданы, формат времени - "HH:MM".
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}

	phone := domain.NormalizePhone(req.ClientPhone)
	if len(phone) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: client phone must contain at least %d digits",
			ErrInvalidInput, domain.MinPhoneDigits)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Stylist != nil && strings.TrimSpace(*req.Stylist) == "" {
		return fmt.Errorf("%w: stylist must not be blank", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что запрошенное время - действительный слот:
// рабочий день и точное попадание в сетку (кратность шагу, внутри окна)
func validateSlot(policy domain.SchedulePolicy, date time.Time, startTime types.TimeString) error {
	if !domain.IsWorkingDay(date) {
		return ErrNonWorkingDay
	}

	if !policy.ContainsSlot(date, startTime) {
		return ErrInvalidTimeSlot
	}

	return nil
}

// slotIsTaken проверяет, что слот уже занят указанным мастером.
// Записи приходят уже отфильтрованными по дате и мастеру, поэтому
// достаточно совпадения времени; первая найденная и решает.
func slotIsTaken(appointments []*domain.Appointment, startTime types.TimeString) bool {
	for _, appt := range appointments {
		if appt.StartTime == startTime {
			return true
		}
	}
	return false
}
