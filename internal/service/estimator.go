package service

import (
	"math"

	"github.com/kashyap-ji/propertyPandit/internal/model"
)

// Tier multipliers and price floor
const (
	tier1Multiplier = 1.2 // tier 1 cities are 20% more expensive
	tier3Multiplier = 0.6 // tier 3 cities are 40% cheaper
	minimumPrice    = 1000000
)

// Model description constants
const (
	ModelType      = "Adjusted OLS Regression for Indian Real Estate"
	ModelRSquared  = "92%"
	ModelPriceRng  = "Realistic Indian housing prices (10L - 5Cr range)"
	ModelCurrency  = "Indian Lakhs/Crores format"
	RetrainMessage = "Using adjusted OLS regression for realistic Indian housing prices!"
)

// Estimator computes housing prices from a fixed coefficient table.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	coefficients *model.Coefficients
}

// NewEstimator creates an estimator over the given coefficient table
func NewEstimator(coefficients *model.Coefficients) *Estimator {
	return &Estimator{
		coefficients: coefficients,
	}
}

// Estimate computes the price for one property, in rupees.
// The accumulated equation value is scaled by the city tier multiplier and
// clamped to the 10 lakh floor.
func (e *Estimator) Estimate(f *model.FeatureRecord) float64 {
	price := e.accumulate(f)

	switch f.CityTier {
	case 1:
		price *= tier1Multiplier
	case 3:
		price *= tier3Multiplier
	}

	return math.Max(price, minimumPrice)
}

// accumulate evaluates the equation before the tier multiplier and the
// floor clamp: intercept, linear terms, polynomial terms, interaction terms,
// then the categorical adjustments, in that order.
func (e *Estimator) accumulate(f *model.FeatureRecord) float64 {
	c := e.coefficients

	price := c.Intercept

	// Linear terms
	price += c.Size * f.Size
	price += c.Beds * float64(f.Bedrooms)
	price += c.Baths * float64(f.Bathrooms)
	price += c.AverageRent * f.AvgLocalRent
	price += c.GrowthRate * f.GrowthRate

	// Polynomial terms
	price += c.SizeSquared * (f.Size * f.Size) / 1000
	price += c.NearbyRentSquared * (f.AvgLocalRent * f.AvgLocalRent) / 1000

	// Interaction terms
	price += c.TierBeds * float64(f.CityTier) * float64(f.Bedrooms)
	price += c.TierGrowth * float64(f.CityTier) * f.GrowthRate

	// Categorical adjustments
	if f.CityTier == 2 {
		price += c.Tier2
	}

	switch f.PropertyType {
	case model.PropertyTypeHouse:
		price += c.PropertyTypeHouse
	case model.PropertyTypeOther:
		price += c.PropertyTypeOther
	}

	if f.RERARegistered == 1 {
		price += c.RERAID1
	}

	switch f.Furnishing {
	case model.FurnishingFull:
		price += c.Furnishing4
	case model.FurnishingLuxury:
		price += c.FurnishingOther
	}

	if f.MoveInReady == 1 {
		price += c.MoveIn1
	}

	return price
}

// Describe returns static metadata about the pricing equation
func (e *Estimator) Describe() *model.ModelInfo {
	return &model.ModelInfo{
		ModelType:      ModelType,
		RSquared:       ModelRSquared,
		Coefficients:   e.coefficients,
		Features:       model.FeatureColumns(),
		PriceRange:     ModelPriceRng,
		CurrencyFormat: ModelCurrency,
	}
}
