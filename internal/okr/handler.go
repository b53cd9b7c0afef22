package okr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okrflow/okrflow-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service OKRService
}

func NewHandler(service OKRService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateOKRDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, verrs, err := h.service.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create OKR")
		return
	}
	if verrs != nil {
		config.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verrs,
		})
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	criteria := FilterCriteria{
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		AssignedTo: r.URL.Query().Get("assignedTo"),
	}

	responses, err := h.service.List(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, log, err, "Failed to list OKRs")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	response, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to fetch OKR")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateOKRDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, verrs, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update OKR")
		return
	}
	if verrs != nil {
		config.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verrs,
		})
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), dto.Status)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update OKR status")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete OKR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	response, err := h.service.DashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to fetch dashboard stats")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, message string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrOKRNotFound):
		http.Error(w, "okr not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid status", http.StatusBadRequest)
	case errors.Is(err, ErrNoKeyResults):
		http.Error(w, "at least one key result is required", http.StatusBadRequest)
	default:
		log.WithError(err).Error(message)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
