package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"quitSmokeAPI/internal/calendar"
	"quitSmokeAPI/internal/checkin"
)

type CheckInService struct {
	db *pgxpool.Pool
}

func NewCheckInService(db *pgxpool.Pool) *CheckInService {
	return &CheckInService{db: db}
}

// UpsertCheckIn writes the single check-in row for (user, day). The
// ON CONFLICT clause is what keeps the one-per-day invariant atomic;
// there is no application-level locking around it.
func (s *CheckInService) UpsertCheckIn(ctx context.Context, userID string, day time.Time, cigarettesCount int) error {
	query := `
	INSERT INTO checkins (user_id, date, cigarettes_count, logged_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id, date)
	DO UPDATE SET
		cigarettes_count = $3,
		logged_at = NOW()
	`

	_, err := s.db.Exec(ctx, query, userID, day, cigarettesCount)
	if err != nil {
		return fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return nil
}

func (s *CheckInService) ListCheckIns(ctx context.Context, userID string, limit int) ([]checkin.CheckIn, error) {
	query := `
	SELECT id, user_id, date, cigarettes_count, logged_at
	FROM checkins
	WHERE user_id = $1
	ORDER BY date DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var items []checkin.CheckIn
	for rows.Next() {
		var c checkin.CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.CigarettesCount, &c.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-ins: %w", err)
	}

	return items, nil
}

// AllForUser loads the full check-in history, oldest first. The stats
// engine needs the whole log, not a window.
func (s *CheckInService) AllForUser(ctx context.Context, userID string) ([]checkin.CheckIn, error) {
	query := `
	SELECT id, user_id, date, cigarettes_count, logged_at
	FROM checkins
	WHERE user_id = $1
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in history: %w", err)
	}
	defer rows.Close()

	var items []checkin.CheckIn
	for rows.Next() {
		var c checkin.CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.CigarettesCount, &c.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-ins: %w", err)
	}

	return items, nil
}

func (s *CheckInService) GetCalendar(ctx context.Context, userID string, year int, month int) (*calendar.CalendarResponse, error) {
	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	query := `
	SELECT date, cigarettes_count
	FROM checkins
	WHERE user_id = $1
		AND date >= $2
		AND date <= $3
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	defer rows.Close()

	dayMap := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		dayMap[date.Format(checkin.DateLayout)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	var days []*calendar.CalendarDay
	today := time.Now().UTC().Format(checkin.DateLayout)

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(checkin.DateLayout)
		count, logged := dayMap[dateStr]
		day := &calendar.CalendarDay{
			Date:            d,
			Logged:          logged,
			CigarettesCount: count,
			SmokeFree:       logged && count == 0,
			IsToday:         dateStr == today,
		}
		days = append(days, day)
	}

	return &calendar.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}
