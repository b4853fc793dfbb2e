package personalgoal

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePersonalGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		http.Error(w, "user id, year, month and target value are required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidTarget), errors.Is(err, ErrUnitRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDeptGoalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to create personal monthly goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		responses, err := h.service.ListByUser(r.Context(), userID)
		if err != nil {
			log.WithError(err).Error("Failed to list personal monthly goals")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		config.JSON(w, http.StatusOK, responses)
		return
	}

	responses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list personal monthly goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "personal monthly goal not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch personal monthly goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdatePersonalGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			http.Error(w, "personal monthly goal not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidTarget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update personal monthly goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "personal monthly goal not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete personal monthly goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
