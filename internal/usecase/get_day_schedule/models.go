package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса расписания дня
type Request struct {
	Date    time.Time // дата (без времени)
	Stylist *string   // фильтр по мастеру; nil - занятость любым мастером
}

// Response модель ответа с расписанием дня.
// WorkingDay = false - явный случай "выходной, слотов нет":
// он отличается от рабочего дня, где все слоты заняты.
type Response struct {
	Date       time.Time
	Stylist    *string
	WorkingDay bool
	Entries    []Entry
}

// Entry один слот дня: свободен (Appointment == nil) или занят
type Entry struct {
	Time        types.TimeString
	Appointment *EntryAppointment
}

// IsFree returns true if the slot has no appointment
func (e Entry) IsFree() bool {
	return e.Appointment == nil
}

// EntryAppointment данные занятого слота для отображения и правки
type EntryAppointment struct {
	ID          string
	ClientName  string
	ClientPhone string
	Stylist     string
	Status      string
}

// OccupiedCount возвращает число занятых слотов
func (r *Response) OccupiedCount() int {
	count := 0
	for _, e := range r.Entries {
		if !e.IsFree() {
			count++
		}
	}
	return count
}

// FreeCount возвращает число свободных слотов
func (r *Response) FreeCount() int {
	return len(r.Entries) - r.OccupiedCount()
}
