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

// AdminHandler serves the administrative user surface. Privilege checks live
// in the RequireAdmin middleware, not here.
type AdminHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.UserService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type inviteUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

type updateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsAdmin   *bool   `json:"is_admin"`
	IsActive  *bool   `json:"is_active"`
}

// InviteUser POST /api/v1/admin/users
func (h *AdminHandler) InviteUser(c *gin.Context) {
	var req inviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Invite(c.Request.Context(), application.InviteInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailExists) {
			response.Error(c, http.StatusConflict, "user with this email already exists", nil)
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("invite failed")
		response.Error(c, http.StatusInternalServerError, "could not create user", nil)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "user created and invitation sent successfully")
}

// ListUsers GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "could not list users", nil)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	response.Success(c, http.StatusOK, out, "users")
}

// GetUser GET /api/v1/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "user")
}

// UpdateUser PUT /api/v1/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), c.Param("id"), application.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrEmailExists):
			response.Error(c, http.StatusConflict, "email already in use", nil)
		default:
			h.Logger.WithError(err).Error("update user failed")
			response.Error(c, http.StatusInternalServerError, "could not update user", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, userView(u), "user updated successfully")
}

// DeleteUser DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id"), actorID); err != nil {
		switch {
		case errors.Is(err, application.ErrSelfDelete):
			response.Error(c, http.StatusBadRequest, "cannot delete your own account", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		default:
			h.Logger.WithError(err).Error("delete user failed")
			response.Error(c, http.StatusInternalServerError, "could not delete user", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user deleted successfully")
}

// ResendInvitation POST /api/v1/admin/users/:id/resend-invitation
func (h *AdminHandler) ResendInvitation(c *gin.Context) {
	if err := h.Svc.ResendInvitation(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrAlreadyActive):
			response.Error(c, http.StatusBadRequest, "user is already active", nil)
		default:
			h.Logger.WithError(err).Error("resend invitation failed")
			response.Error(c, http.StatusInternalServerError, "could not resend invitation", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "invitation resent successfully")
}
