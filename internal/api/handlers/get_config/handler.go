package get_config

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	salon  SalonService
	logger Logger
}

func NewHandler(salon SalonService, logger Logger) *Handler {
	return &Handler{
		salon:  salon,
		logger: logger,
	}
}

// ConfigResponse конфигурация салона для клиента:
// состав мастеров и сетка слотов (аналог config.json исходного приложения)
type ConfigResponse struct {
	Stylists        []string `json:"peluqueros"`
	OpenTime        string   `json:"apertura"`
	CloseTime       string   `json:"cierre"`
	IntervalMinutes int      `json:"intervaloMinutos"`
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	policy := h.salon.Policy()

	handlers.RespondJSON(w, http.StatusOK, ConfigResponse{
		Stylists:        h.salon.Stylists(),
		OpenTime:        policy.OpenTime.String(),
		CloseTime:       policy.CloseTime.String(),
		IntervalMinutes: policy.IntervalMinutes,
	})
}
