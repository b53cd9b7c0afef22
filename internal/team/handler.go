package team

import (
	"net/http"

	"github.com/okrflow/okrflow-lambda/internal/config"
)

type Handler struct {
	repo TeamRepository
}

func NewHandler(repo TeamRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	teams, err := h.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list teams")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, teams)
}
