package get_day_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-SalonService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model: сетка дня слот за слотом
type DayScheduleResponse struct {
	Date       string         `json:"fecha"`
	Stylist    *string        `json:"peluquero,omitempty"`
	WorkingDay bool           `json:"diaLaborable"`
	Slots      []SlotResponse `json:"huecos"`
	Occupied   int            `json:"ocupados"`
	Free       int            `json:"libres"`
}

// SlotResponse один слот: свободен (cita == null) или занят
type SlotResponse struct {
	Time        string           `json:"hora"`
	Free        bool             `json:"libre"`
	Appointment *SlotAppointment `json:"cita,omitempty"`
}

// SlotAppointment данные занятого слота
type SlotAppointment struct {
	ID         string `json:"id"`
	ClientName string `json:"nombre"`
	Phone      string `json:"telefono"`
	Stylist    string `json:"peluquero"`
	Status     string `json:"estado"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		slot := SlotResponse{
			Time: entry.Time.String(),
			Free: entry.IsFree(),
		}
		if entry.Appointment != nil {
			slot.Appointment = &SlotAppointment{
				ID:         entry.Appointment.ID,
				ClientName: entry.Appointment.ClientName,
				Phone:      entry.Appointment.ClientPhone,
				Stylist:    entry.Appointment.Stylist,
				Status:     entry.Appointment.Status,
			}
		}
		slots[i] = slot
	}

	return &DayScheduleResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Stylist:    resp.Stylist,
		WorkingDay: resp.WorkingDay,
		Slots:      slots,
		Occupied:   resp.OccupiedCount(),
		Free:       resp.FreeCount(),
	}
}
