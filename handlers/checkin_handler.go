package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quitSmokeAPI/internal/checkin"
	"quitSmokeAPI/services"
)

type CheckInHandler struct {
	checkinService   *services.CheckInService
	dashboardService *services.DashboardService
}

func NewCheckInHandler(checkinService *services.CheckInService, dashboardService *services.DashboardService) *CheckInHandler {
	return &CheckInHandler{
		checkinService:   checkinService,
		dashboardService: dashboardService,
	}
}

func (h *CheckInHandler) UpsertCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req checkin.UpsertCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.dashboardService.LogCheckIn(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to log check-in")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *CheckInHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.checkinService.ListCheckIns(ctx, userID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list check-ins")
		return
	}

	resp := checkin.CheckInListResponse{Items: []checkin.CheckInItem{}}
	for _, c := range items {
		resp.Items = append(resp.Items, checkin.CheckInItem{
			ID:              c.ID,
			Date:            c.Date.Format(checkin.DateLayout),
			CigarettesCount: c.CigarettesCount,
		})
	}

	respondWithJSON(w, http.StatusOK, resp)
}
