package user

import "testing"

func TestCreateProfileRequestDefaults(t *testing.T) {
	req := &CreateProfileRequest{Name: "Ana", DailyCigBefore: 15, PricePerPack: 6.5}

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if req.CigsPerPack != 20 {
		t.Errorf("CigsPerPack default = %d, want 20", req.CigsPerPack)
	}
	if req.Currency != "$" {
		t.Errorf("Currency default = %q, want $", req.Currency)
	}
}

func TestCreateProfileRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProfileRequest
		wantErr bool
	}{
		{"valid", CreateProfileRequest{Name: "Ana", QuitDate: "2024-01-01", DailyCigBefore: 10, PricePerPack: 5, CigsPerPack: 20}, false},
		{"missing name", CreateProfileRequest{DailyCigBefore: 10}, true},
		{"bad quit date", CreateProfileRequest{Name: "Ana", QuitDate: "01/01/2024"}, true},
		{"negative baseline", CreateProfileRequest{Name: "Ana", DailyCigBefore: -1}, true},
		{"baseline too high", CreateProfileRequest{Name: "Ana", DailyCigBefore: 101}, true},
		{"negative price", CreateProfileRequest{Name: "Ana", PricePerPack: -0.01}, true},
		{"pack too big", CreateProfileRequest{Name: "Ana", CigsPerPack: 41}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	name := "Ana"
	empty := ""
	badDate := "not-a-date"
	goodDate := "2024-02-01"
	negative := -5

	tests := []struct {
		name    string
		req     UpdateProfileRequest
		wantErr bool
	}{
		{"no fields", UpdateProfileRequest{}, true},
		{"name only", UpdateProfileRequest{Name: &name}, false},
		{"empty name", UpdateProfileRequest{Name: &empty}, true},
		{"bad date", UpdateProfileRequest{QuitDate: &badDate}, true},
		{"good date", UpdateProfileRequest{QuitDate: &goodDate}, false},
		{"negative baseline", UpdateProfileRequest{DailyCigBefore: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
