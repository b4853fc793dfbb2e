package department

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create department")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list departments")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			http.Error(w, "department not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch department")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			http.Error(w, "department not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update department")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			http.Error(w, "department not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete department")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPerformanceConfig(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetPerformanceConfig(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			http.Error(w, "performance config not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch performance config")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) PutPerformanceConfig(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var dto PutPerformanceConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(dto.Thresholds) == 0 {
		http.Error(w, "thresholds required", http.StatusBadRequest)
		return
	}

	response, err := h.service.PutPerformanceConfig(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			http.Error(w, "department not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to save performance config")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
