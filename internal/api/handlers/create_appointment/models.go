package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// Имена JSON-полей совпадают с исходным API (испанские).
type CreateAppointmentRequest struct {
	Date       string  `json:"fecha"` // "2025-10-15"
	StartTime  string  `json:"hora"`  // "10:20"
	ClientName string  `json:"nombre"`
	Phone      string  `json:"telefono"`
	Stylist    *string `json:"peluquero,omitempty"`
}

// AppointmentResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Date:        date,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientPhone: r.Phone,
		Stylist:     r.Stylist,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		ClientName: resp.ClientName,
		Phone:      resp.ClientPhone,
		Stylist:    resp.Stylist,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
