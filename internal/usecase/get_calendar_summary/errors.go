package get_calendar_summary

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастера нет в составе салона
	ErrStylistNotFound = errors.New("get_calendar_summary: stylist not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_calendar_summary: invalid date range")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон шире лимита
	ErrRangeTooLarge = errors.New("get_calendar_summary: date range is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_summary: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_summary: internal error")
)
