package get_calendar_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendarSummary "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar_summary"
)

const (
	msgMissingRange      = "los parámetros from y to son obligatorios"
	msgInvalidDateFormat = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidRange      = "rango de fechas no válido"
	msgRangeTooLarge     = "rango de fechas demasiado amplio"
	msgStylistNotFound   = "peluquero no encontrado"
)

type Handler struct {
	useCase GetCalendarSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar-summary
// Query params: from, to (required, YYYY-MM-DD, полуоткрытый диапазон [from, to)),
// stylist (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /calendar-summary - Missing range params")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /calendar-summary - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /calendar-summary - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	useCaseReq := &getCalendarSummary.Request{From: from, To: to}
	if stylist := r.URL.Query().Get("stylist"); stylist != "" {
		useCaseReq.Stylist = &stylist
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarSummary.ErrStylistNotFound):
			h.logger.Warn("GET /calendar-summary - Stylist not found: stylist=%v", useCaseReq.Stylist)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getCalendarSummary.ErrRangeTooLarge):
			h.logger.Warn("GET /calendar-summary - Range too large: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getCalendarSummary.ErrInvalidRange), errors.Is(err, getCalendarSummary.ErrInvalidInput):
			h.logger.Warn("GET /calendar-summary - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar-summary - Failed to summarize: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
