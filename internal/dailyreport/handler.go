package dailyreport

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

	var dto CreateDailyReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		http.Error(w, "goal id, report date, performance value and work content are required", http.StatusBadRequest)
		return
	}
	if dto.ReportDate.IsZero() {
		http.Error(w, "report date required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "personal monthly goal not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to create daily report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) ListByGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goalID, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ListByGoal(r.Context(), goalID)
	if err != nil {
		log.WithError(err).Error("Failed to list daily reports")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateDailyReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "daily report not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update daily report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
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
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "daily report not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete daily report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
