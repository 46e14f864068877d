package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/realtexai/realtex-api/internal/domain/repository"
	handlers "github.com/realtexai/realtex-api/internal/interface/http"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/pkg/helpers"
)

// AdminModule wires the administrative user routes behind the admin guard.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager, users repository.UserRepository) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin(m.Users))
	{
		admin.POST("/users", m.Handler.InviteUser)
		admin.GET("/users", m.Handler.ListUsers)
		admin.GET("/users/:id", m.Handler.GetUser)
		admin.PUT("/users/:id", m.Handler.UpdateUser)
		admin.DELETE("/users/:id", m.Handler.DeleteUser)
		admin.POST("/users/:id/resend-invitation", m.Handler.ResendInvitation)
	}
}
