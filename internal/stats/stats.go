package stats

import (
	"math"
	"time"

	"quitSmokeAPI/internal/checkin"
	"quitSmokeAPI/internal/user"
)

// Milestones are the day-count thresholds the progress bar and the
// day-count badge ladder are measured against.
var Milestones = []int{1, 3, 7, 14, 30, 60, 90}

const dateLayout = "2006-01-02"

type Savings struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Snapshot is derived on demand from the profile and the check-in log.
// It is never persisted.
type Snapshot struct {
	DaysSinceQuit      int     `json:"days_since_quit"`
	CurrentStreak      int     `json:"current_streak"`
	SmokeFreeDays      int     `json:"smoke_free_days"`
	Savings            Savings `json:"savings"`
	BaselineDaily      int     `json:"baseline_daily"`
	ExpectedDailySpend float64 `json:"expected_daily_spend"`
	Milestones         []int   `json:"milestones"`
	Progress           float64 `json:"progress"`
}

// Compute derives a stats snapshot from a profile and its full check-in
// history. Pure: today is an explicit input, normally time.Now().UTC(),
// so results are reproducible in tests.
//
// A profile without a quit date yields zeros for every history-derived
// metric; only the profile echoes (baseline, expected spend, milestones)
// are filled in.
func Compute(profile *user.Profile, checkins []checkin.CheckIn, today time.Time) *Snapshot {
	today = midnightUTC(today)

	costPerCig := 0.0
	if profile.CigsPerPack > 0 {
		costPerCig = profile.PricePerPack / float64(profile.CigsPerPack)
	}

	snap := &Snapshot{
		Savings:            Savings{Amount: 0, Currency: profile.Currency},
		BaselineDaily:      profile.DailyCigBefore,
		ExpectedDailySpend: round2(float64(profile.DailyCigBefore) * costPerCig),
		Milestones:         Milestones,
	}

	if profile.QuitDate == nil {
		return snap
	}
	quitDate := midnightUTC(*profile.QuitDate)

	daysSinceQuit := int(today.Sub(quitDate).Hours() / 24)
	if daysSinceQuit < 0 {
		daysSinceQuit = 0
	}
	snap.DaysSinceQuit = daysSinceQuit

	// One count per calendar day; the store's upsert guarantees
	// uniqueness, so later entries simply win.
	logged := make(map[string]int, len(checkins))
	for _, c := range checkins {
		logged[midnightUTC(c.Date).Format(dateLayout)] = c.CigarettesCount
	}

	for d := quitDate; !d.After(today); d = d.AddDate(0, 0, 1) {
		if cigs, ok := logged[d.Format(dateLayout)]; ok && cigs == 0 {
			snap.SmokeFreeDays++
		}
	}

	// Contiguous trailing run ending today. The first missing or
	// nonzero day breaks it without counting.
	for d := today; !d.Before(quitDate); d = d.AddDate(0, 0, -1) {
		cigs, ok := logged[d.Format(dateLayout)]
		if !ok || cigs != 0 {
			break
		}
		snap.CurrentStreak++
	}

	totalCigsLogged := 0
	for _, cigs := range logged {
		totalCigsLogged += cigs
	}

	totalDays := daysSinceQuit + 1
	if totalDays < 1 {
		totalDays = 1
	}

	cigsAvoided := float64(profile.DailyCigBefore*totalDays - totalCigsLogged)
	if cigsAvoided < 0 {
		cigsAvoided = 0
	}
	snap.Savings.Amount = round2(cigsAvoided * costPerCig)

	if len(Milestones) > 0 {
		maxMilestone := Milestones[len(Milestones)-1]
		progress := float64(daysSinceQuit) / float64(maxMilestone) * 100
		if progress > 100 {
			progress = 100
		}
		snap.Progress = progress
	}

	return snap
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
