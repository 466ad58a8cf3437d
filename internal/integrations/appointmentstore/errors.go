package appointmentstore

import "errors"

var (
	// ErrSlotTaken возвращается на 409: слот уже занят.
	// Текст причины с сервера кладется рядом через SlotTakenError.
	ErrSlotTaken = errors.New("appointmentstore client: slot already taken")

	// ErrAppointmentNotFound возвращается на 404 по ID записи
	ErrAppointmentNotFound = errors.New("appointmentstore client: appointment not found")

	// ErrBadRequest возвращается на 400: сервер отклонил данные записи
	ErrBadRequest = errors.New("appointmentstore client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("appointmentstore client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation:
	// сервис недоступен, виджет рисует пустые данные вместо падения
	ErrServiceDegraded = errors.New("appointmentstore unavailable: graceful degradation applied")
)

// SlotTakenError несет текст отказа с сервера, чтобы виджет показал
// его пользователю дословно
type SlotTakenError struct {
	Reason string
}

func (e *SlotTakenError) Error() string {
	return ErrSlotTaken.Error() + ": " + e.Reason
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}

// RejectionError несет текст валидационного отказа с сервера
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return ErrBadRequest.Error() + ": " + e.Reason
}

func (e *RejectionError) Unwrap() error {
	return ErrBadRequest
}
