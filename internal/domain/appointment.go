package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusPending запись создана, визит ещё не оплачен
	StatusPending AppointmentStatus = "Pendiente"
	// StatusPaid визит оплачен
	StatusPaid AppointmentStatus = "Pagado"
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{StatusPending, StatusPaid}

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment represents a client appointment in the salon.
// The slot identity is the tuple (Date, StartTime, Stylist): one stylist
// cannot hold two appointments in the same slot on the same date.
type Appointment struct {
	ID          uuid.UUID
	Date        time.Time        // дата записи (без времени)
	StartTime   types.TimeString // время слота, например "10:20"
	ClientName  string
	ClientPhone string
	Stylist     string
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment takes the given slot
// for the given stylist
func (a *Appointment) OccupiesSlot(date time.Time, slot types.TimeString, stylist string) bool {
	return sameDate(a.Date, date) && a.StartTime == slot && a.Stylist == stylist
}

// AppointmentsFilter фильтр выборки записей.
// Nil-поля означают отсутствие фильтрации по соответствующему признаку.
type AppointmentsFilter struct {
	Date     *time.Time // конкретная дата
	DateFrom *time.Time // начало периода (включительно)
	DateTo   *time.Time // конец периода (НЕ включительно, полуинтервал)
	Stylist  *string    // конкретный мастер
}

// AppointmentUpdate частичное обновление записи.
// Дата, время и мастер после создания не меняются: перенос записи
// в этой версии делается отменой и повторным созданием.
type AppointmentUpdate struct {
	ClientName  *string
	ClientPhone *string
	Status      *AppointmentStatus
}

// IsEmpty returns true if the update carries no changes
func (u *AppointmentUpdate) IsEmpty() bool {
	return u.ClientName == nil && u.ClientPhone == nil && u.Status == nil
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
