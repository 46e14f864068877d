package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/realtexai/realtex-api/internal/interface/http"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/pkg/helpers"
)

// PropertyModule wires the property catalog and persisted valuation routes.
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/properties")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/valuations", m.Handler.Valuate)
		auth.GET("/:id/valuations", m.Handler.Valuations)
	}
}
