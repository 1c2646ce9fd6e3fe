package handler

import (
	"net/http"

	"github.com/kashyap-ji/propertyPandit/internal/model"
	"github.com/kashyap-ji/propertyPandit/internal/service"
	"github.com/kashyap-ji/propertyPandit/internal/utils"

	"github.com/gin-gonic/gin"
)

// PredictHandler handles price prediction HTTP requests
type PredictHandler struct {
	estimator *service.Estimator
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(estimator *service.Estimator) *PredictHandler {
	return &PredictHandler{
		estimator: estimator,
	}
}

// Predict handles POST /predict
//
// Accepts the ten form fields (form-encoded or JSON), prices the property
// and responds with the raw amount plus display strings. Parse failures come
// back as a structured failure payload, never a 5xx: the computation either
// fully succeeds or fails before producing a result.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req model.PredictRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, model.PredictResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	features, err := req.Features()
	if err != nil {
		c.JSON(http.StatusOK, model.PredictResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	price := h.estimator.Estimate(features)

	c.JSON(http.StatusOK, model.PredictResponse{
		Success:        true,
		PredictedPrice: utils.Round2(price),
		FormattedPrice: utils.FormatINR(price),
		PriceInLakhs:   utils.InLakhs(price),
	})
}

// Retrain handles POST /retrain
//
// The route name is kept for frontend compatibility; no fitting happens.
// It returns static metadata about the pricing equation and always succeeds.
func (h *PredictHandler) Retrain(c *gin.Context) {
	c.JSON(http.StatusOK, model.ModelInfoResponse{
		Success:   true,
		Message:   service.RetrainMessage,
		ModelInfo: h.estimator.Describe(),
	})
}
