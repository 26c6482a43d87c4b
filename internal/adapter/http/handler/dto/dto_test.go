package dto

import (
	"testing"

	"github.com/Temutjin2k/ubar/pkg/validator"
)

func TestValidateApplication(t *testing.T) {
	tests := []struct {
		name       string
		req        ApplicationRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  ApplicationRequest{Name: "Marcus", Email: "m@ubar.io", VehicleModel: "Sprinter", LicensePlate: "ubr-001"},
		},
		{
			name:       "blank",
			req:        ApplicationRequest{Name: "  "},
			wantFields: []string{"name", "email", "vehicle_model", "license_plate"},
		},
		{
			name:       "bad email",
			req:        ApplicationRequest{Name: "A", Email: "nope", VehicleModel: "V", LicensePlate: "P"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateApplication(v, &tt.req)
			if len(v.Errors) != len(tt.wantFields) {
				t.Fatalf("errors = %v, want fields %v", v.Errors, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := v.Errors[f]; !ok {
					t.Errorf("missing error for %q", f)
				}
			}
		})
	}
}

func TestApplicationToModel(t *testing.T) {
	req := ApplicationRequest{Name: " Marcus ", Email: "m@ubar.io", VehicleModel: "Sprinter", LicensePlate: " ubr-001 "}
	got := req.ToModel()
	if got.Name != "Marcus" || got.LicensePlate != "UBR-001" {
		t.Fatalf("got %+v", got)
	}
}

func TestValidateLocate(t *testing.T) {
	v := validator.New()
	ValidateLocate(v, &LocateRequest{Error: "unsupported"})
	if !v.Valid() {
		t.Fatalf("unsupported must be accepted: %v", v.Errors)
	}

	v = validator.New()
	ValidateLocate(v, &LocateRequest{Error: "gps on fire"})
	if v.Valid() {
		t.Fatal("unknown code must be rejected")
	}
}

func TestValidateSelectSuggestion(t *testing.T) {
	neg := -1
	v := validator.New()
	ValidateSelectSuggestion(v, &SelectSuggestionRequest{Index: &neg})
	if v.Valid() {
		t.Fatal("negative index must be rejected")
	}

	v = validator.New()
	ValidateSelectSuggestion(v, &SelectSuggestionRequest{})
	if _, ok := v.Errors["index"]; !ok {
		t.Fatal("missing index must be rejected")
	}
}
