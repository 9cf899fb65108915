package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"quitSmokeAPI/internal/badge"
	"quitSmokeAPI/internal/stats"
	"quitSmokeAPI/internal/user"
)

type BadgeService struct {
	db            *pgxpool.Pool
	notifications *NotificationService
	onAward       func()
}

func NewBadgeService(db *pgxpool.Pool, notifications *NotificationService) *BadgeService {
	return &BadgeService{db: db, notifications: notifications}
}

// SetAwardHook injects a callback invoked once per persisted badge, used
// by main.go to feed the Prometheus award counter.
func (s *BadgeService) SetAwardHook(hook func()) {
	s.onAward = hook
}

func (s *BadgeService) ListBadges(ctx context.Context, userID string) ([]*badge.Badge, error) {
	query := `
	SELECT id, user_id, key, name, description, icon, awarded_at
	FROM badges
	WHERE user_id = $1
	ORDER BY awarded_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	var badges []*badge.Badge
	for rows.Next() {
		b := &badge.Badge{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.Key, &b.Name, &b.Description, &b.Icon, &b.AwardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating badges: %w", err)
	}

	if badges == nil {
		badges = []*badge.Badge{}
	}

	return badges, nil
}

// ExistingKeys fetches every badge key the user already holds in one
// query, so awarding is a set-difference instead of a lookup per
// candidate key.
func (s *BadgeService) ExistingKeys(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.db.Query(ctx, `SELECT key FROM badges WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badge keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan badge key: %w", err)
		}
		keys[key] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating badge keys: %w", err)
	}

	return keys, nil
}

// EvaluateAndAward runs the badge rules against a snapshot and persists
// whatever is new. The unique (user_id, key) index plus ON CONFLICT DO
// NOTHING keeps concurrent evaluations from double-awarding; a badge that
// lost the race is dropped from the result.
func (s *BadgeService) EvaluateAndAward(ctx context.Context, profile *user.Profile, snap *stats.Snapshot) ([]*badge.Badge, error) {
	existing, err := s.ExistingKeys(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	candidates := badge.Awardable(profile.ID, snap, profile.Currency, existing, time.Now().UTC())

	query := `
	INSERT INTO badges (id, user_id, key, name, description, icon, awarded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (user_id, key) DO NOTHING
	`

	var awarded []*badge.Badge
	for _, b := range candidates {
		tag, err := s.db.Exec(ctx, query, b.ID, b.UserID, b.Key, b.Name, b.Description, b.Icon, b.AwardedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to award badge %s: %w", b.Key, err)
		}
		if tag.RowsAffected() == 0 {
			continue
		}
		awarded = append(awarded, b)

		if s.onAward != nil {
			s.onAward()
		}

		if s.notifications != nil {
			if err := s.notifications.NotifyBadgeAwarded(ctx, b); err != nil {
				// The badge is already persisted; a failed notification
				// must not fail the award.
				log.Printf("Failed to notify user %s about badge %s: %v", b.UserID, b.Key, err)
			}
		}
	}

	return awarded, nil
}
