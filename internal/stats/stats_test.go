package stats

import (
	"testing"
	"time"

	"quitSmokeAPI/internal/checkin"
	"quitSmokeAPI/internal/user"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProfile(quitDate *time.Time) *user.Profile {
	return &user.Profile{
		ID:             "u1",
		Name:           "Test User",
		QuitDate:       quitDate,
		DailyCigBefore: 20,
		PricePerPack:   10.0,
		CigsPerPack:    20,
		Currency:       "$",
	}
}

func checkins(counts map[time.Time]int) []checkin.CheckIn {
	var items []checkin.CheckIn
	for d, c := range counts {
		items = append(items, checkin.CheckIn{UserID: "u1", Date: d, CigarettesCount: c})
	}
	return items
}

func TestComputeConcreteScenario(t *testing.T) {
	quit := day(2024, time.January, 1)
	today := day(2024, time.January, 3)

	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.January, 1): 0,
		day(2024, time.January, 2): 0,
		day(2024, time.January, 3): 0,
	}), today)

	if snap.DaysSinceQuit != 2 {
		t.Errorf("DaysSinceQuit = %d, want 2", snap.DaysSinceQuit)
	}
	if snap.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", snap.CurrentStreak)
	}
	if snap.SmokeFreeDays != 3 {
		t.Errorf("SmokeFreeDays = %d, want 3", snap.SmokeFreeDays)
	}
	// 3 days * 20 baseline - 0 logged = 60 avoided * 0.50 per cig
	if snap.Savings.Amount != 30.0 {
		t.Errorf("Savings.Amount = %v, want 30.0", snap.Savings.Amount)
	}
	if snap.Savings.Currency != "$" {
		t.Errorf("Savings.Currency = %q, want $", snap.Savings.Currency)
	}
	if snap.ExpectedDailySpend != 10.0 {
		t.Errorf("ExpectedDailySpend = %v, want 10.0", snap.ExpectedDailySpend)
	}
	if snap.BaselineDaily != 20 {
		t.Errorf("BaselineDaily = %d, want 20", snap.BaselineDaily)
	}
}

func TestStreakBreaksOnSmokedDay(t *testing.T) {
	quit := day(2024, time.March, 1)
	today := day(2024, time.March, 4)

	// day0:0 day1:0 day2:5 day3:0 (today) -> streak is only today,
	// but three distinct smoke-free days exist.
	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.March, 1): 0,
		day(2024, time.March, 2): 0,
		day(2024, time.March, 3): 5,
		day(2024, time.March, 4): 0,
	}), today)

	if snap.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", snap.CurrentStreak)
	}
	if snap.SmokeFreeDays != 3 {
		t.Errorf("SmokeFreeDays = %d, want 3", snap.SmokeFreeDays)
	}
}

func TestStreakBreaksOnMissingDay(t *testing.T) {
	quit := day(2024, time.March, 1)
	today := day(2024, time.March, 4)

	// No check-in on March 3: absence is not smoke-free.
	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.March, 1): 0,
		day(2024, time.March, 2): 0,
		day(2024, time.March, 4): 0,
	}), today)

	if snap.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", snap.CurrentStreak)
	}
	if snap.SmokeFreeDays != 3 {
		t.Errorf("SmokeFreeDays = %d, want 3", snap.SmokeFreeDays)
	}
}

func TestStreakZeroWhenTodayNotLogged(t *testing.T) {
	quit := day(2024, time.March, 1)
	today := day(2024, time.March, 4)

	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.March, 2): 0,
		day(2024, time.March, 3): 0,
	}), today)

	if snap.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", snap.CurrentStreak)
	}
}

func TestSavingsNeverNegative(t *testing.T) {
	quit := day(2024, time.May, 1)
	today := day(2024, time.May, 2)

	// Logged far more than the baseline would predict.
	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.May, 1): 100,
		day(2024, time.May, 2): 100,
	}), today)

	if snap.Savings.Amount != 0 {
		t.Errorf("Savings.Amount = %v, want 0", snap.Savings.Amount)
	}
}

func TestTotalLoggedNotWindowedToQuitDate(t *testing.T) {
	quit := day(2024, time.May, 10)
	today := day(2024, time.May, 10)

	// A pre-quit check-in still counts against the avoided total.
	snap := Compute(testProfile(&quit), checkins(map[time.Time]int{
		day(2024, time.May, 1):  10,
		day(2024, time.May, 10): 0,
	}), today)

	// 1 day * 20 baseline - 10 logged = 10 avoided * 0.50 per cig
	if snap.Savings.Amount != 5.0 {
		t.Errorf("Savings.Amount = %v, want 5.0", snap.Savings.Amount)
	}
	// The pre-quit day contributes nothing to smoke-free counting.
	if snap.SmokeFreeDays != 1 {
		t.Errorf("SmokeFreeDays = %d, want 1", snap.SmokeFreeDays)
	}
}

func TestNoQuitDateYieldsZeros(t *testing.T) {
	snap := Compute(testProfile(nil), checkins(map[time.Time]int{
		day(2024, time.June, 1): 0,
	}), day(2024, time.June, 1))

	if snap.DaysSinceQuit != 0 || snap.CurrentStreak != 0 || snap.SmokeFreeDays != 0 {
		t.Errorf("expected zeroed counters, got days=%d streak=%d smokeFree=%d",
			snap.DaysSinceQuit, snap.CurrentStreak, snap.SmokeFreeDays)
	}
	if snap.Savings.Amount != 0 {
		t.Errorf("Savings.Amount = %v, want 0", snap.Savings.Amount)
	}
	if snap.Progress != 0 {
		t.Errorf("Progress = %v, want 0", snap.Progress)
	}
}

func TestFutureQuitDateClampsToZero(t *testing.T) {
	quit := day(2024, time.December, 1)
	today := day(2024, time.June, 1)

	snap := Compute(testProfile(&quit), nil, today)

	if snap.DaysSinceQuit != 0 {
		t.Errorf("DaysSinceQuit = %d, want 0", snap.DaysSinceQuit)
	}
	if snap.CurrentStreak != 0 || snap.SmokeFreeDays != 0 {
		t.Errorf("expected zero streak and smoke-free days, got %d and %d",
			snap.CurrentStreak, snap.SmokeFreeDays)
	}
}

func TestZeroCigsPerPackDoesNotDivide(t *testing.T) {
	quit := day(2024, time.April, 1)
	profile := testProfile(&quit)
	profile.CigsPerPack = 0

	snap := Compute(profile, nil, day(2024, time.April, 5))

	if snap.Savings.Amount != 0 {
		t.Errorf("Savings.Amount = %v, want 0", snap.Savings.Amount)
	}
	if snap.ExpectedDailySpend != 0 {
		t.Errorf("ExpectedDailySpend = %v, want 0", snap.ExpectedDailySpend)
	}
}

func TestZeroBaselineMeansZeroSavings(t *testing.T) {
	quit := day(2024, time.April, 1)
	profile := testProfile(&quit)
	profile.DailyCigBefore = 0

	snap := Compute(profile, checkins(map[time.Time]int{
		day(2024, time.April, 1): 0,
		day(2024, time.April, 2): 0,
	}), day(2024, time.April, 2))

	if snap.Savings.Amount != 0 {
		t.Errorf("Savings.Amount = %v, want 0", snap.Savings.Amount)
	}
	if snap.ExpectedDailySpend != 0 {
		t.Errorf("ExpectedDailySpend = %v, want 0", snap.ExpectedDailySpend)
	}
}

func TestProgressClampsAtHundred(t *testing.T) {
	quit := day(2023, time.January, 1)
	today := day(2024, time.January, 1)

	snap := Compute(testProfile(&quit), nil, today)

	if snap.Progress != 100 {
		t.Errorf("Progress = %v, want 100", snap.Progress)
	}
}

func TestProgressPartialWay(t *testing.T) {
	quit := day(2024, time.January, 1)
	today := day(2024, time.February, 15)

	snap := Compute(testProfile(&quit), nil, today)

	want := float64(45) / 90 * 100
	if snap.Progress != want {
		t.Errorf("Progress = %v, want %v", snap.Progress, want)
	}
}

func TestSavingsRounding(t *testing.T) {
	quit := day(2024, time.July, 1)
	profile := testProfile(&quit)
	profile.PricePerPack = 9.99
	profile.CigsPerPack = 19
	profile.DailyCigBefore = 7

	snap := Compute(profile, nil, day(2024, time.July, 3))

	// 3 days * 7 = 21 cigs avoided at 9.99/19 each = 11.0414...
	if snap.Savings.Amount != 11.04 {
		t.Errorf("Savings.Amount = %v, want 11.04", snap.Savings.Amount)
	}
}
