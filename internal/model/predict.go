package model

// PredictRequest carries the raw form fields of a prediction request.
// Everything arrives as a string; Features() parses it into typed values.
type PredictRequest struct {
	Size           string `form:"size" json:"size" binding:"required"`
	Bedrooms       string `form:"bedrooms" json:"bedrooms" binding:"required"`
	Bathrooms      string `form:"bathrooms" json:"bathrooms" binding:"required"`
	AvgLocalRent   string `form:"avg_local_rent" json:"avg_local_rent" binding:"required"`
	GrowthRate     string `form:"growth_rate" json:"growth_rate" binding:"required"`
	CityTier       string `form:"city_tier" json:"city_tier" binding:"required"`
	PropertyType   string `form:"property_type" json:"property_type" binding:"required"`
	Furnishing     string `form:"furnishing" json:"furnishing" binding:"required"`
	RERARegistered string `form:"rera_registered" json:"rera_registered" binding:"required"`
	MoveInReady    string `form:"move_in_ready" json:"move_in_ready" binding:"required"`
}

// PredictResponse is the JSON payload for a prediction.
// On failure only Success and Error are set.
type PredictResponse struct {
	Success        bool    `json:"success"`
	PredictedPrice float64 `json:"predicted_price,omitempty"`
	FormattedPrice string  `json:"formatted_price,omitempty"`
	PriceInLakhs   string  `json:"price_in_lakhs,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// ModelInfo describes the pricing equation: a fixed label, the hardcoded
// accuracy figure, the full coefficient table and the recognized features.
type ModelInfo struct {
	ModelType      string        `json:"model_type"`
	RSquared       string        `json:"r_squared"`
	Coefficients   *Coefficients `json:"coefficients"`
	Features       []string      `json:"features"`
	PriceRange     string        `json:"price_range"`
	CurrencyFormat string        `json:"currency_format"`
}

// ModelInfoResponse is the JSON payload for the model description endpoint.
type ModelInfoResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	ModelInfo *ModelInfo `json:"model_info,omitempty"`
	Error     string     `json:"error,omitempty"`
}
