package get_day_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// resolveEntries сопоставляет каждому слоту сетки запись (или её отсутствие).
// Порядок слотов сохраняется. На слот ожидается не больше одной записи
// (инвариант держит create_appointment); при дубликатах во входных данных
// побеждает первая в порядке обхода.
func resolveEntries(slots []types.TimeString, appointments []*domain.Appointment) []Entry {
	entries := make([]Entry, len(slots))

	for i, slot := range slots {
		entries[i] = Entry{Time: slot}

		for _, appt := range appointments {
			if appt.StartTime == slot {
				entries[i].Appointment = &EntryAppointment{
					ID:          appt.ID.String(),
					ClientName:  appt.ClientName,
					ClientPhone: appt.ClientPhone,
					Stylist:     appt.Stylist,
					Status:      string(appt.Status),
				}
				break
			}
		}
	}

	return entries
}
