package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quitSmokeAPI/internal/craving"
)

type CravingService struct {
	db *pgxpool.Pool
}

func NewCravingService(db *pgxpool.Pool) *CravingService {
	return &CravingService{db: db}
}

// AddCraving appends one craving episode. The log is write-only from the
// user's perspective; nothing ever updates or deletes a row.
func (s *CravingService) AddCraving(ctx context.Context, req *craving.CreateCravingRequest) (*craving.Craving, error) {
	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	c := &craving.Craving{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		Intensity:  req.Intensity,
		Trigger:    req.Trigger,
		Note:       req.Note,
		OccurredAt: occurredAt,
	}

	query := `
	INSERT INTO cravings (id, user_id, intensity, trigger, note, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query, c.ID, c.UserID, c.Intensity, c.Trigger, c.Note, c.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("failed to log craving: %w", err)
	}

	return c, nil
}

func (s *CravingService) ListCravings(ctx context.Context, userID string, limit int) ([]*craving.Craving, error) {
	query := `
	SELECT id, user_id, intensity, trigger, note, occurred_at
	FROM cravings
	WHERE user_id = $1
	ORDER BY occurred_at DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cravings: %w", err)
	}
	defer rows.Close()

	var items []*craving.Craving
	for rows.Next() {
		c := &craving.Craving{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Intensity, &c.Trigger, &c.Note, &c.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan craving: %w", err)
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cravings: %w", err)
	}

	if items == nil {
		items = []*craving.Craving{}
	}

	return items, nil
}

// GetInsights aggregates the craving log for the insights endpoint:
// totals, average intensity, last-7-days count and per-trigger counts.
func (s *CravingService) GetInsights(ctx context.Context, userID string) (*craving.Insights, error) {
	insights := &craving.Insights{ByTrigger: map[string]int{}}

	query := `
	SELECT
		COUNT(*) AS total_cravings,
		COALESCE(AVG(intensity), 0) AS average_intensity,
		COALESCE(COUNT(*) FILTER (WHERE occurred_at >= NOW() - INTERVAL '7 days'), 0) AS last_seven_days
	FROM cravings
	WHERE user_id = $1
	`

	err := s.db.QueryRow(ctx, query, userID).Scan(
		&insights.TotalCravings,
		&insights.AverageIntensity,
		&insights.LastSevenDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cravings: %w", err)
	}

	triggerQuery := `
	SELECT trigger, COUNT(*)
	FROM cravings
	WHERE user_id = $1 AND trigger IS NOT NULL AND trigger != ''
	GROUP BY trigger
	ORDER BY COUNT(*) DESC
	`

	rows, err := s.db.Query(ctx, triggerQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate triggers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var trigger string
		var count int
		if err := rows.Scan(&trigger, &count); err != nil {
			return nil, fmt.Errorf("failed to scan trigger count: %w", err)
		}
		insights.ByTrigger[trigger] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trigger counts: %w", err)
	}

	return insights, nil
}
