package departmentgoal

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

	var dto CreateDepartmentGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		http.Error(w, "department id, year, month, target value and unit are required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidTarget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create department monthly goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if deptIDStr := r.URL.Query().Get("department_id"); deptIDStr != "" {
		deptID, err := uuid.Parse(deptIDStr)
		if err != nil {
			http.Error(w, "invalid department id", http.StatusBadRequest)
			return
		}
		responses, err := h.service.ListByDepartment(r.Context(), deptID)
		if err != nil {
			log.WithError(err).Error("Failed to list department monthly goals")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		config.JSON(w, http.StatusOK, responses)
		return
	}

	responses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list department monthly goals")
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
			http.Error(w, "department monthly goal not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch department monthly goal")
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

	var dto UpdateDepartmentGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			http.Error(w, "department monthly goal not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidTarget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update department monthly goal")
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
			http.Error(w, "department monthly goal not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete department monthly goal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
