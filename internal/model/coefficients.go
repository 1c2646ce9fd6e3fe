package model

// Coefficients is the fixed weight table of the pricing equation. It is
// built once at startup by DefaultCoefficients and shared read-only; nothing
// mutates it afterwards, so concurrent use needs no synchronization.
type Coefficients struct {
	Intercept         float64 `json:"intercept"`
	Size              float64 `json:"size"`
	Beds              float64 `json:"beds"`
	Baths             float64 `json:"baths"`
	AverageRent       float64 `json:"average_rent"`
	GrowthRate        float64 `json:"growth_rate"`
	SizeSquared       float64 `json:"size_squared"`
	NearbyRentSquared float64 `json:"nearby_rent_squared"`
	TierBeds          float64 `json:"tier_beds"`
	TierGrowth        float64 `json:"tier_growth"`
	Tier2             float64 `json:"tier_2"`
	PropertyTypeHouse float64 `json:"property_type_house"`
	PropertyTypeOther float64 `json:"property_type_other"`
	RERAID1           float64 `json:"rera_id_1"`
	Furnishing4       float64 `json:"furnishing_4"`
	FurnishingOther   float64 `json:"furnishing_other"`
	MoveIn1           float64 `json:"move_in_1"`
}

// DefaultCoefficients returns the weight table tuned for realistic Indian
// housing prices (roughly 10L to 5Cr).
func DefaultCoefficients() *Coefficients {
	return &Coefficients{
		Intercept:         3000000, // base price, about 30 lakhs
		Size:              2500,    // per sq ft
		Beds:              800000,
		Baths:             400000,
		AverageRent:       15,
		GrowthRate:        8000000,
		SizeSquared:       0.5,
		NearbyRentSquared: -0.001, // diminishing returns in very high rent areas
		TierBeds:          -200000,
		TierGrowth:        5000000,
		Tier2:             -800000,
		PropertyTypeHouse: -500000,
		PropertyTypeOther: -1000000,
		RERAID1:           300000,
		Furnishing4:       500000,
		FurnishingOther:   800000, // luxury furnishing premium
		MoveIn1:           200000,
	}
}

// FeatureColumns lists the input fields of the pricing equation, in the
// order the form presents them.
func FeatureColumns() []string {
	return []string{
		"size", "bedrooms", "bathrooms", "avg_local_rent",
		"growth_rate", "city_tier", "property_type", "furnishing",
		"rera_registered", "move_in_ready",
	}
}
