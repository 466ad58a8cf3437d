package update_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "ID de cita no válido"
	msgInvalidRequestBody   = "cuerpo de la petición no válido"
	msgAppointmentNotFound  = "Cita no encontrada"
	msgInvalidStatus        = "estado de cita no válido"
	msgInvalidInput         = "datos de la cita no válidos"
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

// Handle PATCH /api/v1/appointments/{id}
// Обновляются только имя, телефон и статус. Дата, время и мастер
// записи не меняются, на правку контактов перепроверка занятости не нужна.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if _, err := uuid.Parse(id); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id} - Invalid status: id=%s", id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
