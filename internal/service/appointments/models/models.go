package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date    *time.Time // фильтр по дате (опционально)
	Stylist *string    // фильтр по мастеру (опционально)
}

// UpdateAppointmentRequest частичное обновление записи клиента.
// Дата, время и мастер не обновляются.
type UpdateAppointmentRequest struct {
	ClientName  *string `json:"nombre,omitempty"`
	ClientPhone *string `json:"telefono,omitempty"`
	Status      *string `json:"estado,omitempty"`
}

// Response модели

// AppointmentResponse запись клиента.
// Имена JSON-полей совпадают с исходным API (испанские).
type AppointmentResponse struct {
	ID         string `json:"id"`
	Date       string `json:"fecha"`
	StartTime  string `json:"hora"`
	ClientName string `json:"nombre"`
	Phone      string `json:"telefono"`
	Stylist    string `json:"peluquero"`
	Status     string `json:"estado"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID.String(),
		Date:       a.Date.Format(domain.DateFormat),
		StartTime:  a.StartTime.String(),
		ClientName: a.ClientName,
		Phone:      a.ClientPhone,
		Stylist:    a.Stylist,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список доменных записей в response
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(list))
	for i, a := range list {
		out[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}

// ToDomainStatus валидирует и конвертирует статус из строки
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
