package get_calendar_summary

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendarSummary "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar_summary"
)

// CalendarSummaryResponse HTTP response model: сводка по дням диапазона
type CalendarSummaryResponse struct {
	From string               `json:"desde"`
	To   string               `json:"hasta"`
	Days []DaySummaryResponse `json:"dias"`
}

// DaySummaryResponse сводка одного дня для раскраски ячейки календаря
type DaySummaryResponse struct {
	Date        string                 `json:"fecha"`
	Weekend     bool                   `json:"finDeSemana"`
	TotalSlots  int                    `json:"totalHuecos"`
	FullyBooked bool                   `json:"completo"`
	PerStylist  []StylistCountResponse `json:"porPeluquero"`
	Badge       string                 `json:"etiqueta"`
}

// StylistCountResponse занятость одного мастера за день
type StylistCountResponse struct {
	Stylist  string `json:"peluquero"`
	Acronym  string `json:"siglas"`
	Occupied int    `json:"ocupados"`
	Free     int    `json:"libres"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarSummary.Response) *CalendarSummaryResponse {
	days := make([]DaySummaryResponse, len(resp.Days))
	for i, day := range resp.Days {
		perStylist := make([]StylistCountResponse, len(day.PerStylist))
		for j, sc := range day.PerStylist {
			perStylist[j] = StylistCountResponse{
				Stylist:  sc.Stylist,
				Acronym:  sc.Acronym,
				Occupied: sc.Occupied,
				Free:     sc.Free,
			}
		}

		days[i] = DaySummaryResponse{
			Date:        day.Date.Format(domain.DateFormat),
			Weekend:     day.Weekend,
			TotalSlots:  day.TotalSlots,
			FullyBooked: day.FullyBooked,
			PerStylist:  perStylist,
			Badge:       day.Badge,
		}
	}

	return &CalendarSummaryResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Days: days,
	}
}
