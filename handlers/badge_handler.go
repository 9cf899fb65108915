package handlers

import (
	"context"
	"net/http"
	"time"

	"quitSmokeAPI/internal/badge"
	"quitSmokeAPI/services"
)

type BadgeHandler struct {
	badgeService *services.BadgeService
}

func NewBadgeHandler(badgeService *services.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

func (h *BadgeHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'user_id' is required")
		return
	}

	badges, err := h.badgeService.ListBadges(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list badges")
		return
	}

	respondWithJSON(w, http.StatusOK, badge.BadgeListResponse{Items: badges})
}
