package badge

import "strconv"

func dayKey(m int) string {
	return "days_" + strconv.Itoa(m)
}

func streakKey(m int) string {
	return "streak_" + strconv.Itoa(m)
}

func savingsKey(m float64) string {
	return "savings_" + strconv.Itoa(int(m))
}

func pluralDays(m int) string {
	if m == 1 {
		return "1 day"
	}
	return strconv.Itoa(m) + " days"
}
