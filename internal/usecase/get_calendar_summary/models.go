package get_calendar_summary

import "time"

// maxRangeDays лимит ширины диапазона. Видимый диапазон месячного
// календаря - максимум 6 недель (42 ячейки); лимит с запасом на два месяца.
const maxRangeDays = 62

// Request модель запроса сводки по диапазону дат.
// Диапазон полуоткрытый: [From, To), как отдает его календарный виджет.
type Request struct {
	From    time.Time // начало диапазона (включительно)
	To      time.Time // конец диапазона (НЕ включительно)
	Stylist *string   // активный фильтр по мастеру; nil - все мастера
}

// Response сводка занятости по дням диапазона
type Response struct {
	From time.Time
	To   time.Time
	Days []DaySummary
}

// DaySummary сводка одного дня для раскраски ячейки и бейджа.
// Weekend-дни не бронируемы независимо от занятости: календарь красит их
// фиксированным "выходным" состоянием, а не цветом занятости.
type DaySummary struct {
	Date        time.Time
	Weekend     bool
	TotalSlots  int
	FullyBooked bool
	PerStylist  []StylistCount
	Badge       string // строка бейджа вида "D:34 / JL:12"
}

// StylistCount занятость одного мастера за день
type StylistCount struct {
	Stylist  string
	Acronym  string
	Occupied int
	Free     int
}
