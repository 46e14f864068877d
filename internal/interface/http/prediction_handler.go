package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/realtexai/realtex-api/internal/application"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/internal/valuation"
	"github.com/realtexai/realtex-api/pkg/response"
	"github.com/realtexai/realtex-api/pkg/validation"
)

type PredictionHandler struct {
	Svc    *application.ValuationService
	Logger *logrus.Logger
}

func NewPredictionHandler(svc *application.ValuationService, logger *logrus.Logger) *PredictionHandler {
	return &PredictionHandler{Svc: svc, Logger: logger}
}

// propertyRequest binds through pointers so an absent field is distinguished
// from a zero value; missing fields are reported in declaration order.
type propertyRequest struct {
	Location     *string  `json:"location" binding:"required"`
	SizeSqft     *float64 `json:"size_sqft" binding:"required"`
	NumBedrooms  *int     `json:"num_bedrooms" binding:"required"`
	NumBathrooms *int     `json:"num_bathrooms" binding:"required"`
	PropertyType *string  `json:"property_type" binding:"required"`
}

func (r *propertyRequest) toInput() valuation.PropertyInput {
	return valuation.PropertyInput{
		Location:     *r.Location,
		SizeSqft:     *r.SizeSqft,
		NumBedrooms:  *r.NumBedrooms,
		NumBathrooms: *r.NumBathrooms,
		PropertyType: *r.PropertyType,
	}
}

type growthRequest struct {
	Location     *string `json:"location" binding:"required"`
	PropertyType *string `json:"property_type" binding:"required"`
}

func (h *PredictionHandler) unauthorized(c *gin.Context, err error) bool {
	if errors.Is(err, application.ErrUserNotFound) || errors.Is(err, application.ErrInactiveAccount) {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return true
	}
	return false
}

// PredictPrice POST /api/v1/predictions/price
func (h *PredictionHandler) PredictPrice(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstMissing(err), validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	price, err := h.Svc.PredictPrice(c.Request.Context(), uid, req.toInput())
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("price prediction failed")
		response.Error(c, http.StatusInternalServerError, "prediction failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"predicted_price": price,
		"model_version":   valuation.ModelVersion,
	}, "price prediction")
}

// PredictRent POST /api/v1/predictions/rent
func (h *PredictionHandler) PredictRent(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstMissing(err), validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	est, err := h.Svc.PredictRent(c.Request.Context(), uid, req.toInput())
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("rent prediction failed")
		response.Error(c, http.StatusInternalServerError, "prediction failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"predicted_monthly_rent": est.MonthlyRent,
		"predicted_annual_rent":  est.AnnualRent,
		"predicted_rental_yield": est.RentalYield,
		"model_version":          valuation.ModelVersion,
	}, "rent prediction")
}

// PredictCapitalGrowth POST /api/v1/predictions/capital-growth
func (h *PredictionHandler) PredictCapitalGrowth(c *gin.Context) {
	var req growthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstMissing(err), validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	est, err := h.Svc.PredictCapitalGrowth(c.Request.Context(), uid, *req.Location, *req.PropertyType)
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("capital growth prediction failed")
		response.Error(c, http.StatusInternalServerError, "prediction failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"predicted_capital_growth_1y": est.OneYear,
		"predicted_capital_growth_3y": est.ThreeYear,
		"predicted_capital_growth_5y": est.FiveYear,
		"model_version":               valuation.ModelVersion,
	}, "capital growth prediction")
}

// GetAreaScore GET /api/v1/predictions/area-score?area=&country=
func (h *PredictionHandler) GetAreaScore(c *gin.Context) {
	areaName := c.Query("area")
	country := c.Query("country")
	if areaName == "" || country == "" {
		response.Error(c, http.StatusBadRequest, "area name and country are required", nil)
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	area, err := h.Svc.GetAreaScore(c.Request.Context(), uid, areaName, country)
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("area score lookup failed")
		response.Error(c, http.StatusInternalServerError, "area score lookup failed", nil)
		return
	}
	response.Success(c, http.StatusOK, areaView(area), "area score")
}
