package user

import "time"

type Profile struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	QuitDate       *time.Time `json:"quit_date"`
	DailyCigBefore int        `json:"daily_cig_before"`
	PricePerPack   float64    `json:"price_per_pack"`
	CigsPerPack    int        `json:"cigs_per_pack"`
	Currency       string     `json:"currency"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
