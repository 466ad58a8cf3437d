package get_day_schedule

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастера нет в составе салона
	ErrStylistNotFound = errors.New("get_day_schedule: stylist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
