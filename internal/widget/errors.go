package widget

import "errors"

var (
	// ErrValidation возвращается, когда черновик не проходит локальную
	// проверку; сетевой вызов при этом не делается
	ErrValidation = errors.New("widget: draft validation failed")

	// ErrSubmitFailed возвращается на любой не-конфликтный отказ сервера
	ErrSubmitFailed = errors.New("widget: submit failed")

	// ErrSlotConflict возвращается, когда сервер отклонил бронь как занятую
	ErrSlotConflict = errors.New("widget: slot conflict")
)
