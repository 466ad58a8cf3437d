package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-SalonService/internal/usecase/get_day_schedule"
)

const (
	msgMissingDate       = "la fecha es obligatoria"
	msgInvalidDateFormat = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgStylistNotFound   = "peluquero no encontrado"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (required, YYYY-MM-DD), stylist (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	useCaseReq := &getDaySchedule.Request{Date: date}
	if stylist := r.URL.Query().Get("stylist"); stylist != "" {
		useCaseReq.Stylist = &stylist
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrStylistNotFound):
			h.logger.Warn("GET /schedule - Stylist not found: stylist=%v", useCaseReq.Stylist)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)

		default:
			h.logger.Error("GET /schedule - Failed to get day schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
