package services

import (
	"context"
	"time"

	"quitSmokeAPI/internal/badge"
	"quitSmokeAPI/internal/checkin"
	"quitSmokeAPI/internal/stats"
)

// DashboardService is the request-layer orchestration around the two pure
// engines: load profile and history, compute the snapshot, award badges,
// respond. All I/O happens here, never inside the engines.
type DashboardService struct {
	users    *UserService
	checkins *CheckInService
	badges   *BadgeService
}

func NewDashboardService(users *UserService, checkins *CheckInService, badges *BadgeService) *DashboardService {
	return &DashboardService{
		users:    users,
		checkins: checkins,
		badges:   badges,
	}
}

type DashboardUser struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type DashboardResponse struct {
	User   DashboardUser   `json:"user"`
	Stats  *stats.Snapshot `json:"stats"`
	Badges []*badge.Badge  `json:"badges"`
}

type CheckInResult struct {
	Stats     *stats.Snapshot `json:"stats"`
	NewBadges []*badge.Badge  `json:"new_badges"`
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*DashboardResponse, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.checkins.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := stats.Compute(profile, history, time.Now().UTC())

	if _, err := s.badges.EvaluateAndAward(ctx, profile, snap); err != nil {
		return nil, err
	}

	badges, err := s.badges.ListBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		User:   DashboardUser{Name: profile.Name, Currency: profile.Currency},
		Stats:  snap,
		Badges: badges,
	}, nil
}

// LogCheckIn upserts the day's entry, then re-runs the stats and badge
// engines so the response carries the fresh snapshot and anything newly
// earned.
func (s *DashboardService) LogCheckIn(ctx context.Context, req *checkin.UpsertCheckInRequest) (*CheckInResult, error) {
	profile, err := s.users.GetProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.checkins.UpsertCheckIn(ctx, req.UserID, req.Day(now), req.CigarettesCount); err != nil {
		return nil, err
	}

	history, err := s.checkins.AllForUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	snap := stats.Compute(profile, history, now)

	newBadges, err := s.badges.EvaluateAndAward(ctx, profile, snap)
	if err != nil {
		return nil, err
	}
	if newBadges == nil {
		newBadges = []*badge.Badge{}
	}

	return &CheckInResult{
		Stats:     snap,
		NewBadges: newBadges,
	}, nil
}
