package get_stylists

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
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

// StylistResponse мастер с акронимом для календарных бейджей
type StylistResponse struct {
	Name    string `json:"nombre"`
	Acronym string `json:"siglas"`
}

// StylistListResponse состав мастеров в порядке конфигурации
type StylistListResponse struct {
	Stylists []StylistResponse `json:"peluqueros"`
}

// Handle GET /api/v1/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	names := h.salon.Stylists()

	stylists := make([]StylistResponse, len(names))
	for i, name := range names {
		stylists[i] = StylistResponse{
			Name:    name,
			Acronym: domain.Acronym(name),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, StylistListResponse{Stylists: stylists})
}
