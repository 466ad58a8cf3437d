package get_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidDateFormat = "formato de fecha no válido, se espera YYYY-MM-DD"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (YYYY-MM-DD), stylist (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		req.Date = &date
	}

	if stylist := r.URL.Query().Get("stylist"); stylist != "" {
		req.Stylist = &stylist
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
