package overview

import (
	"net/http"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) LoadAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	response, err := h.service.LoadAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load overview")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
