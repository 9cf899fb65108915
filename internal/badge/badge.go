package badge

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"quitSmokeAPI/internal/stats"
)

// Ladder thresholds. Each metric is monotonic over a user's history, so
// re-evaluating the ladders is always safe: a crossed threshold stays
// crossed and the key set keeps awarding idempotent.
var (
	DayMilestones     = []int{1, 3, 7, 14, 30, 60, 90}
	StreakMilestones  = []int{3, 7, 14, 30, 60}
	SavingsMilestones = []float64{10, 50, 100, 250, 500}
)

type Badge struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	AwardedAt   time.Time `json:"awarded_at"`
}

type BadgeListResponse struct {
	Items []*Badge `json:"items"`
}

// Awardable decides which badges the given snapshot newly earns. It only
// returns badges whose key is absent from existing; the caller persists
// them. AwardedAt is the evaluation instant, not the day the threshold was
// first crossed, so re-evaluation after downtime never back-dates awards.
func Awardable(userID string, snap *stats.Snapshot, currency string, existing map[string]bool, now time.Time) []*Badge {
	var awarded []*Badge

	grant := func(key, name, description, icon string) {
		if existing[key] {
			return
		}
		awarded = append(awarded, &Badge{
			ID:          uuid.New().String(),
			UserID:      userID,
			Key:         key,
			Name:        name,
			Description: description,
			Icon:        icon,
			AwardedAt:   now.UTC(),
		})
	}

	for _, m := range DayMilestones {
		if snap.DaysSinceQuit >= m {
			grant(dayKey(m),
				pluralDays(m)+" smoke-free",
				"You reached "+pluralDays(m)+" since quitting!",
				"🔥")
		}
	}

	for _, m := range StreakMilestones {
		if snap.CurrentStreak >= m {
			grant(streakKey(m),
				pluralDays(m)+" streak",
				pluralDays(m)+" in a row without smoking",
				"🏆")
		}
	}

	for _, m := range SavingsMilestones {
		if snap.Savings.Amount >= m {
			grant(savingsKey(m),
				"Saved "+currency+strconv.Itoa(int(m)),
				"You saved at least "+currency+strconv.Itoa(int(m)),
				"💰")
		}
	}

	return awarded
}
