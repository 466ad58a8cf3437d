package create_appointment

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот (дата, время, мастер) уже занят
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrStylistNotFound возвращается, когда мастера нет в составе салона
	ErrStylistNotFound = errors.New("create_appointment: stylist not found")

	// ErrNonWorkingDay возвращается на попытку записи на выходной день
	ErrNonWorkingDay = errors.New("create_appointment: non-working day")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not on the slot grid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
