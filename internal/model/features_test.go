package model

import (
	"errors"
	"testing"
)

func validRequest() PredictRequest {
	return PredictRequest{
		Size:           "1000",
		Bedrooms:       "2",
		Bathrooms:      "2",
		AvgLocalRent:   "20000",
		GrowthRate:     "5",
		CityTier:       "1",
		PropertyType:   "apartment",
		Furnishing:     "2",
		RERARegistered: "1",
		MoveInReady:    "1",
	}
}

func TestPredictRequest_Features(t *testing.T) {
	req := validRequest()

	f, err := req.Features()
	if err != nil {
		t.Fatalf("Features() error = %v", err)
	}

	if f.Size != 1000 {
		t.Errorf("Size = %v, want 1000", f.Size)
	}
	if f.Bedrooms != 2 {
		t.Errorf("Bedrooms = %d, want 2", f.Bedrooms)
	}
	if f.AvgLocalRent != 20000 {
		t.Errorf("AvgLocalRent = %v, want 20000", f.AvgLocalRent)
	}
	if f.CityTier != 1 {
		t.Errorf("CityTier = %d, want 1", f.CityTier)
	}
	if f.PropertyType != PropertyTypeApartment {
		t.Errorf("PropertyType = %q, want %q", f.PropertyType, PropertyTypeApartment)
	}
	// Furnishing is carried through verbatim, numeric code or sentinel alike
	if f.Furnishing != "2" {
		t.Errorf("Furnishing = %q, want %q", f.Furnishing, "2")
	}
	if f.RERARegistered != 1 || f.MoveInReady != 1 {
		t.Errorf("flags = %d/%d, want 1/1", f.RERARegistered, f.MoveInReady)
	}
}

func TestPredictRequest_Features_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *PredictRequest)
		wantField string
	}{
		{
			name:      "missing size",
			mutate:    func(r *PredictRequest) { r.Size = "" },
			wantField: "size",
		},
		{
			name:      "non-numeric size",
			mutate:    func(r *PredictRequest) { r.Size = "big" },
			wantField: "size",
		},
		{
			name:      "fractional bedrooms",
			mutate:    func(r *PredictRequest) { r.Bedrooms = "2.5" },
			wantField: "bedrooms",
		},
		{
			name:      "non-numeric growth rate",
			mutate:    func(r *PredictRequest) { r.GrowthRate = "fast" },
			wantField: "growth_rate",
		},
		{
			name:      "missing city tier",
			mutate:    func(r *PredictRequest) { r.CityTier = "" },
			wantField: "city_tier",
		},
		{
			name:      "non-integer rera flag",
			mutate:    func(r *PredictRequest) { r.RERARegistered = "yes" },
			wantField: "rera_registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := req.Features()
			if err == nil {
				t.Fatal("Features() error = nil, want InputError")
			}

			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Features() error = %T, want *InputError", err)
			}
			if inputErr.Field != tt.wantField {
				t.Errorf("InputError.Field = %q, want %q", inputErr.Field, tt.wantField)
			}
		})
	}
}
