package checkin

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// CheckIn is one daily log entry. At most one row exists per (user, date);
// the service enforces this with an upsert keyed on that pair.
type CheckIn struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            time.Time `json:"date"`
	CigarettesCount int       `json:"cigarettes_count"`
	LoggedAt        time.Time `json:"logged_at"`
}

type UpsertCheckInRequest struct {
	UserID          string `json:"user_id"`
	Date            string `json:"date,omitempty"`
	CigarettesCount int    `json:"cigarettes_count"`
}

type CheckInItem struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	CigarettesCount int    `json:"cigarettes_count"`
}

type CheckInListResponse struct {
	Items []CheckInItem `json:"items"`
}

func (r *UpsertCheckInRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Date != "" {
		if _, err := time.Parse(DateLayout, r.Date); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
	}
	if r.CigarettesCount < 0 || r.CigarettesCount > 200 {
		return fmt.Errorf("cigarettes_count must be between 0 and 200")
	}
	return nil
}

// Day returns the check-in date resolved against today, normalized to
// midnight UTC.
func (r *UpsertCheckInRequest) Day(today time.Time) time.Time {
	if r.Date == "" {
		return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}
	d, _ := time.Parse(DateLayout, r.Date)
	return d
}
