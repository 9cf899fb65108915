package calendar

import "time"

type CalendarDay struct {
	Date            time.Time `json:"date"`
	Logged          bool      `json:"logged"`
	CigarettesCount int       `json:"cigarettes_count"`
	SmokeFree       bool      `json:"smoke_free"`
	IsToday         bool      `json:"is_today"`
}

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  []*CalendarDay `json:"days"`
}
