package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtexai/realtex-api/internal/domain/repository"
	"github.com/realtexai/realtex-api/pkg/response"
)

// RequireAdmin is the privilege boundary for administrative routes: it loads
// the authenticated caller and rejects non-admins and inactive accounts.
// Must run after Auth.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxUserIDKey)
		u, err := users.GetByID(uid)
		if err != nil || u == nil || !u.IsActive {
			response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		if !u.IsAdmin {
			response.Error(c, http.StatusForbidden, "admin privileges required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
