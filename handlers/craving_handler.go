package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quitSmokeAPI/internal/craving"
	"quitSmokeAPI/services"
)

type CravingHandler struct {
	cravingService *services.CravingService
	userService    *services.UserService
}

func NewCravingHandler(cravingService *services.CravingService, userService *services.UserService) *CravingHandler {
	return &CravingHandler{
		cravingService: cravingService,
		userService:    userService,
	}
}

func (h *CravingHandler) CreateCraving(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req craving.CreateCravingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.userService.GetProfile(ctx, req.UserID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	c, err := h.cravingService.AddCraving(ctx, &req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to log craving")
		return
	}

	respondWithJSON(w, http.StatusCreated, c)
}

func (h *CravingHandler) ListCravings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'user_id' is required")
		return
	}

	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 365 {
			respondWithError(w, http.StatusBadRequest, "limit must be between 1 and 365")
			return
		}
		limit = parsed
	}

	items, err := h.cravingService.ListCravings(ctx, userID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list cravings")
		return
	}

	respondWithJSON(w, http.StatusOK, craving.CravingListResponse{Items: items})
}

func (h *CravingHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'user_id' is required")
		return
	}

	insights, err := h.cravingService.GetInsights(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to build craving insights")
		return
	}

	respondWithJSON(w, http.StatusOK, insights)
}
