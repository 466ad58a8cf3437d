package get_calendar_summary

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// occupancyIndex счётчики занятости (дата -> мастер -> число записей),
// собранные одним проходом по выборке за весь диапазон
type occupancyIndex map[string]map[string]int

// buildOccupancyIndex индексирует записи диапазона по дате и мастеру
func buildOccupancyIndex(appointments []*domain.Appointment) occupancyIndex {
	index := make(occupancyIndex)

	for _, appt := range appointments {
		day := appt.Date.Format(domain.DateFormat)
		if index[day] == nil {
			index[day] = make(map[string]int)
		}
		index[day][appt.Stylist]++
	}

	return index
}

// summarizeRange строит сводку по каждому дню полуоткрытого диапазона [from, to).
// Сетка слотов генерируется один раз на день (не на каждого мастера),
// выборка записей у вызывающего тоже одна на весь диапазон.
func summarizeRange(
	policy domain.SchedulePolicy,
	from, to time.Time,
	stylists []string,
	filter *string,
	index occupancyIndex,
) []DaySummary {
	// Акронимы не зависят от даты, считаем заранее
	acronyms := make(map[string]string, len(stylists))
	for _, name := range stylists {
		acronyms[name] = domain.Acronym(name)
	}

	days := make([]DaySummary, 0)

	for date := from; date.Before(to); date = date.AddDate(0, 0, 1) {
		days = append(days, summarizeDay(policy, date, stylists, filter, acronyms, index))
	}

	return days
}

// summarizeDay строит сводку одного дня
func summarizeDay(
	policy domain.SchedulePolicy,
	date time.Time,
	stylists []string,
	filter *string,
	acronyms map[string]string,
	index occupancyIndex,
) DaySummary {
	if !domain.IsWorkingDay(date) {
		// Выходной: фиксированное состояние, занятость не считается
		return DaySummary{
			Date:       date,
			Weekend:    true,
			PerStylist: []StylistCount{},
		}
	}

	totalSlots := policy.SlotCount(date)
	dayIndex := index[date.Format(domain.DateFormat)]

	perStylist := make([]StylistCount, 0, len(stylists))
	badgeParts := make([]string, 0, len(stylists))

	for _, name := range stylists {
		occupied := dayIndex[name]

		// Свободные не уходят в минус даже при дублях или записях
		// вне сетки во входных данных
		free := totalSlots - occupied
		if free < 0 {
			free = 0
		}

		perStylist = append(perStylist, StylistCount{
			Stylist:  name,
			Acronym:  acronyms[name],
			Occupied: occupied,
			Free:     free,
		})
		badgeParts = append(badgeParts, acronyms[name]+":"+strconv.Itoa(free))
	}

	return DaySummary{
		Date:        date,
		TotalSlots:  totalSlots,
		FullyBooked: isFullyBooked(totalSlots, perStylist, filter),
		PerStylist:  perStylist,
		Badge:       strings.Join(badgeParts, " / "),
	}
}

// isFullyBooked определяет полностью занятый день.
// С активным фильтром по мастеру смотрим только на него; без фильтра день
// полон, лишь когда КАЖДЫЙ мастер занят полностью (конъюнкция, не сумма):
// "у кого-то есть окно" и "заняты все" - принципиально разные состояния.
func isFullyBooked(totalSlots int, perStylist []StylistCount, filter *string) bool {
	if totalSlots <= 0 {
		return false
	}

	if filter != nil {
		for _, sc := range perStylist {
			if sc.Stylist == *filter {
				return sc.Occupied >= totalSlots
			}
		}
		return false
	}

	for _, sc := range perStylist {
		if sc.Occupied < totalSlots {
			return false
		}
	}

	return len(perStylist) > 0
}
