package user

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type CreateProfileRequest struct {
	Name           string  `json:"name"`
	QuitDate       string  `json:"quit_date,omitempty"`
	DailyCigBefore int     `json:"daily_cig_before"`
	PricePerPack   float64 `json:"price_per_pack"`
	CigsPerPack    int     `json:"cigs_per_pack,omitempty"`
	Currency       string  `json:"currency,omitempty"`
}

type UpdateProfileRequest struct {
	Name           *string  `json:"name,omitempty"`
	QuitDate       *string  `json:"quit_date,omitempty"`
	DailyCigBefore *int     `json:"daily_cig_before,omitempty"`
	PricePerPack   *float64 `json:"price_per_pack,omitempty"`
	CigsPerPack    *int     `json:"cigs_per_pack,omitempty"`
	Currency       *string  `json:"currency,omitempty"`
}

// Validate checks the onboarding payload and fills defaults
// (cigs_per_pack=20, currency="$"), matching the stored column defaults.
func (r *CreateProfileRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.QuitDate != "" {
		if _, err := time.Parse(DateLayout, r.QuitDate); err != nil {
			return fmt.Errorf("quit_date must be YYYY-MM-DD")
		}
	}
	if r.DailyCigBefore < 0 || r.DailyCigBefore > 100 {
		return fmt.Errorf("daily_cig_before must be between 0 and 100")
	}
	if r.PricePerPack < 0 {
		return fmt.Errorf("price_per_pack must not be negative")
	}
	if r.CigsPerPack == 0 {
		r.CigsPerPack = 20
	}
	if r.CigsPerPack < 1 || r.CigsPerPack > 40 {
		return fmt.Errorf("cigs_per_pack must be between 1 and 40")
	}
	if r.Currency == "" {
		r.Currency = "$"
	}
	return nil
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name == nil && r.QuitDate == nil && r.DailyCigBefore == nil &&
		r.PricePerPack == nil && r.CigsPerPack == nil && r.Currency == nil {
		return fmt.Errorf("no fields to update")
	}
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if r.QuitDate != nil {
		if _, err := time.Parse(DateLayout, *r.QuitDate); err != nil {
			return fmt.Errorf("quit_date must be YYYY-MM-DD")
		}
	}
	if r.DailyCigBefore != nil && (*r.DailyCigBefore < 0 || *r.DailyCigBefore > 100) {
		return fmt.Errorf("daily_cig_before must be between 0 and 100")
	}
	if r.PricePerPack != nil && *r.PricePerPack < 0 {
		return fmt.Errorf("price_per_pack must not be negative")
	}
	if r.CigsPerPack != nil && (*r.CigsPerPack < 1 || *r.CigsPerPack > 40) {
		return fmt.Errorf("cigs_per_pack must be between 1 and 40")
	}
	return nil
}
