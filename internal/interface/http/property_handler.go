package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/realtexai/realtex-api/internal/application"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/pkg/response"
	"github.com/realtexai/realtex-api/pkg/validation"
)

// PropertyHandler serves the property catalog and its persisted valuation
// snapshots.
type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type createPropertyRequest struct {
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	Postcode     string   `json:"postcode" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	SizeSqft     *float64 `json:"size_sqft" binding:"required"`
	NumBedrooms  *int     `json:"num_bedrooms" binding:"required"`
	NumBathrooms *int     `json:"num_bathrooms" binding:"required"`
	ListingPrice *float64 `json:"listing_price" binding:"required"`
	PropertyType *string  `json:"property_type" binding:"required"`
}

func (h *PropertyHandler) unauthorized(c *gin.Context, err error) bool {
	if errors.Is(err, application.ErrUserNotFound) || errors.Is(err, application.ErrInactiveAccount) {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return true
	}
	return false
}

// Create POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstMissing(err), validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, application.CreatePropertyInput{
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		Postcode:     req.Postcode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		SizeSqft:     *req.SizeSqft,
		NumBedrooms:  *req.NumBedrooms,
		NumBathrooms: *req.NumBathrooms,
		ListingPrice: *req.ListingPrice,
		PropertyType: *req.PropertyType,
	})
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("create property failed")
		response.Error(c, http.StatusInternalServerError, "could not create property", nil)
		return
	}
	response.Success(c, http.StatusCreated, propertyView(p), "property created")
}

// List GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	props, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		h.Logger.WithError(err).Error("list properties failed")
		response.Error(c, http.StatusInternalServerError, "could not list properties", nil)
		return
	}
	out := make([]gin.H, 0, len(props))
	for _, p := range props {
		out = append(out, propertyView(p))
	}
	response.Success(c, http.StatusOK, out, "properties")
}

// Get GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		response.Error(c, http.StatusNotFound, "property not found", nil)
		return
	}
	response.Success(c, http.StatusOK, propertyView(p), "property")
}

// Delete DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		if h.unauthorized(c, err) {
			return
		}
		response.Error(c, http.StatusNotFound, "property not found", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "property deleted")
}

// Valuate POST /api/v1/properties/:id/valuations
func (h *PropertyHandler) Valuate(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	pred, err := h.Svc.Valuate(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		if errors.Is(err, application.ErrPropertyNotFound) {
			response.Error(c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).Error("property valuation failed")
		response.Error(c, http.StatusInternalServerError, "valuation failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, predictionView(pred), "valuation saved")
}

// Valuations GET /api/v1/properties/:id/valuations
func (h *PropertyHandler) Valuations(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	preds, err := h.Svc.Valuations(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if h.unauthorized(c, err) {
			return
		}
		if errors.Is(err, application.ErrPropertyNotFound) {
			response.Error(c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).Error("list valuations failed")
		response.Error(c, http.StatusInternalServerError, "could not list valuations", nil)
		return
	}
	out := make([]gin.H, 0, len(preds))
	for _, p := range preds {
		out = append(out, predictionView(p))
	}
	response.Success(c, http.StatusOK, out, "valuations")
}
