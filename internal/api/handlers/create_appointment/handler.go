package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDateFormat  = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgSlotTaken          = "Hueco ocupado"
	msgStylistNotFound    = "peluquero no encontrado"
	msgNonWorkingDay      = "el salón está cerrado ese día"
	msgInvalidTimeSlot    = "hora fuera del horario del salón"
	msgInvalidInput       = "datos de la cita no válidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			// 409 с тем же текстом, что показывал исходный бэкенд
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrStylistNotFound):
			h.logger.Warn("POST /appointments - Stylist not found: stylist=%v", req.Stylist)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createAppointment.ErrNonWorkingDay):
			h.logger.Warn("POST /appointments - Non-working day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, time=%s, stylist=%s",
		result.ID, req.Date, req.StartTime, result.Stylist)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
