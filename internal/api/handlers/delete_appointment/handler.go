package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de cita no válido"
	msgAppointmentNotFound  = "Cita no encontrada"
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

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if _, err := uuid.Parse(id); err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
