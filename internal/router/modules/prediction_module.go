package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realtexai/realtex-api/internal/container"
	handlers "github.com/realtexai/realtex-api/internal/interface/http"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/pkg/helpers"
)

// PredictionModule wires the valuation endpoints. All routes require a valid
// access token; the service re-checks the active flag per request.
type PredictionModule struct {
	Handler *handlers.PredictionHandler
	JWT     *helpers.JWTManager
}

func NewPredictionModule(h *handlers.PredictionHandler, jwt *helpers.JWTManager) *PredictionModule {
	return &PredictionModule{Handler: h, JWT: jwt}
}

func (m *PredictionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/predictions")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/price", m.Handler.PredictPrice)
		auth.POST("/rent", m.Handler.PredictRent)
		auth.POST("/capital-growth", m.Handler.PredictCapitalGrowth)
		auth.GET("/area-score", m.Handler.GetAreaScore)
	}
}
