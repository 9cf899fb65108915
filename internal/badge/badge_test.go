package badge

import (
	"testing"
	"time"

	"quitSmokeAPI/internal/stats"
)

func snapshot(days, streak int, savings float64) *stats.Snapshot {
	return &stats.Snapshot{
		DaysSinceQuit: days,
		CurrentStreak: streak,
		SmokeFreeDays: days,
		Savings:       stats.Savings{Amount: savings, Currency: "$"},
	}
}

func keysOf(badges []*Badge) map[string]bool {
	keys := make(map[string]bool, len(badges))
	for _, b := range badges {
		keys[b.Key] = true
	}
	return keys
}

func TestAwardableConcreteScenario(t *testing.T) {
	// days=2, streak=3, savings=30: earns days_1, streak_3 and
	// savings_10, but neither days_3 nor savings_50.
	now := time.Now().UTC()
	awarded := Awardable("u1", snapshot(2, 3, 30.0), "$", map[string]bool{}, now)

	keys := keysOf(awarded)
	want := []string{"days_1", "streak_3", "savings_10"}
	if len(keys) != len(want) {
		t.Fatalf("awarded keys = %v, want exactly %v", keys, want)
	}
	for _, k := range want {
		if !keys[k] {
			t.Errorf("missing expected badge %s", k)
		}
	}
	if keys["days_3"] {
		t.Error("days_3 awarded at days_since_quit=2")
	}
	if keys["savings_50"] {
		t.Error("savings_50 awarded at savings=30")
	}
}

func TestAwardableIdempotent(t *testing.T) {
	now := time.Now().UTC()
	snap := snapshot(14, 7, 120.0)

	existing := map[string]bool{}
	first := Awardable("u1", snap, "$", existing, now)
	if len(first) == 0 {
		t.Fatal("expected badges on first evaluation")
	}

	for _, b := range first {
		existing[b.Key] = true
	}

	second := Awardable("u1", snap, "$", existing, now)
	if len(second) != 0 {
		t.Errorf("second evaluation awarded %d badges, want 0", len(second))
	}
}

func TestAwardableMonotonic(t *testing.T) {
	now := time.Now().UTC()

	lesser := keysOf(Awardable("u1", snapshot(7, 3, 60.0), "$", map[string]bool{}, now))
	greater := keysOf(Awardable("u1", snapshot(30, 14, 260.0), "$", map[string]bool{}, now))

	for k := range lesser {
		if !greater[k] {
			t.Errorf("key %s awarded for lesser stats but not for greater", k)
		}
	}
}

func TestAwardableSkipsExistingKeysOnly(t *testing.T) {
	now := time.Now().UTC()
	existing := map[string]bool{"days_1": true, "streak_3": true}

	awarded := Awardable("u1", snapshot(3, 3, 0), "$", existing, now)

	keys := keysOf(awarded)
	if keys["days_1"] || keys["streak_3"] {
		t.Errorf("re-awarded existing keys: %v", keys)
	}
	if !keys["days_3"] {
		t.Error("days_3 not awarded despite days_since_quit=3")
	}
}

func TestAwardableZeroStatsAwardsNothing(t *testing.T) {
	awarded := Awardable("u1", snapshot(0, 0, 0), "$", map[string]bool{}, time.Now().UTC())
	if len(awarded) != 0 {
		t.Errorf("awarded %d badges for zero stats, want 0", len(awarded))
	}
}

func TestAwardedAtIsEvaluationInstant(t *testing.T) {
	now := time.Date(2024, time.August, 1, 12, 30, 0, 0, time.UTC)
	awarded := Awardable("u1", snapshot(1, 0, 0), "$", map[string]bool{}, now)

	if len(awarded) != 1 {
		t.Fatalf("awarded %d badges, want 1", len(awarded))
	}
	if !awarded[0].AwardedAt.Equal(now) {
		t.Errorf("AwardedAt = %v, want %v", awarded[0].AwardedAt, now)
	}
	if awarded[0].UserID != "u1" {
		t.Errorf("UserID = %q, want u1", awarded[0].UserID)
	}
}

func TestSavingsBadgeUsesCurrency(t *testing.T) {
	awarded := Awardable("u1", snapshot(0, 0, 75.0), "€", map[string]bool{}, time.Now().UTC())

	keys := keysOf(awarded)
	if !keys["savings_10"] || !keys["savings_50"] {
		t.Fatalf("expected savings_10 and savings_50, got %v", keys)
	}
	for _, b := range awarded {
		if b.Name == "" || b.Description == "" {
			t.Errorf("badge %s has empty copy", b.Key)
		}
		if b.Name != "Saved €"+b.Key[len("savings_"):] {
			t.Errorf("badge name %q does not carry the currency", b.Name)
		}
	}
}
