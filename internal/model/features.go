package model

import (
	"fmt"
	"strconv"
)

// Property type values recognized by the pricing equation.
// Apartment is the baseline and gets no adjustment.
const (
	PropertyTypeHouse     = "house"
	PropertyTypeApartment = "apartment"
	PropertyTypeOther     = "other"
)

// Furnishing codes recognized by the pricing equation. The upstream form
// mixes a numeric code with a string sentinel, so both are kept as string
// codes here; any other value means no furnishing adjustment.
const (
	FurnishingFull   = "4"
	FurnishingLuxury = "other"
)

// FeatureRecord is one property's attributes, typed and ready for pricing.
// Constructed per request and never mutated.
type FeatureRecord struct {
	Size           float64 // square footage
	Bedrooms       int
	Bathrooms      int
	AvgLocalRent   float64
	GrowthRate     float64 // annual growth percentage
	CityTier       int     // 1, 2 or 3
	PropertyType   string
	Furnishing     string
	RERARegistered int // 0 or 1
	MoveInReady    int // 0 or 1
}

// InputError reports a form field that is missing or failed to parse.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// Features parses the raw string fields into a typed FeatureRecord.
// The first field that fails to parse aborts with an InputError.
func (r *PredictRequest) Features() (*FeatureRecord, error) {
	f := &FeatureRecord{
		PropertyType: r.PropertyType,
		Furnishing:   r.Furnishing,
	}

	var err error
	if f.Size, err = parseFloatField("size", r.Size); err != nil {
		return nil, err
	}
	if f.Bedrooms, err = parseIntField("bedrooms", r.Bedrooms); err != nil {
		return nil, err
	}
	if f.Bathrooms, err = parseIntField("bathrooms", r.Bathrooms); err != nil {
		return nil, err
	}
	if f.AvgLocalRent, err = parseFloatField("avg_local_rent", r.AvgLocalRent); err != nil {
		return nil, err
	}
	if f.GrowthRate, err = parseFloatField("growth_rate", r.GrowthRate); err != nil {
		return nil, err
	}
	if f.CityTier, err = parseIntField("city_tier", r.CityTier); err != nil {
		return nil, err
	}
	if f.RERARegistered, err = parseIntField("rera_registered", r.RERARegistered); err != nil {
		return nil, err
	}
	if f.MoveInReady, err = parseIntField("move_in_ready", r.MoveInReady); err != nil {
		return nil, err
	}

	return f, nil
}

func parseFloatField(field, value string) (float64, error) {
	if value == "" {
		return 0, &InputError{Field: field, Reason: "field is required"}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &InputError{Field: field, Reason: "not a number"}
	}
	return v, nil
}

func parseIntField(field, value string) (int, error) {
	if value == "" {
		return 0, &InputError{Field: field, Reason: "field is required"}
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InputError{Field: field, Reason: "not an integer"}
	}
	return v, nil
}
