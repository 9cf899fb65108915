package craving

import (
	"fmt"
	"time"
)

type Craving struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Intensity  int       `json:"intensity"`
	Trigger    *string   `json:"trigger,omitempty"`
	Note       *string   `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type CreateCravingRequest struct {
	UserID     string     `json:"user_id"`
	Intensity  int        `json:"intensity"`
	Trigger    *string    `json:"trigger,omitempty"`
	Note       *string    `json:"note,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

type CravingListResponse struct {
	Items []*Craving `json:"items"`
}

// Insights is a read-side aggregation over the craving log.
type Insights struct {
	TotalCravings    int            `json:"total_cravings"`
	AverageIntensity float64        `json:"average_intensity"`
	LastSevenDays    int            `json:"last_seven_days"`
	ByTrigger        map[string]int `json:"by_trigger"`
}

func (r *CreateCravingRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Intensity < 1 || r.Intensity > 5 {
		return fmt.Errorf("intensity must be between 1 and 5")
	}
	return nil
}
