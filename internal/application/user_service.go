package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/realtexai/realtex-api/config"
	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
	"github.com/realtexai/realtex-api/pkg/helpers"
	"github.com/realtexai/realtex-api/pkg/mailer"
)

// UserService owns the identity lifecycle: invitation, activation,
// authentication and the administrative user surface.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, cfg *config.Config) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Pub: pub, Logger: logger, Cfg: cfg}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Login validates credentials and mints an access/refresh token pair.
// Inactive accounts cannot authenticate even with a correct password; the
// invitation must be accepted first.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !u.CheckPassword(password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, TokenPair{}, ErrInactiveAccount
	}

	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		return nil, TokenPair{}, err
	}
	return u, TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh mints a new access token from a valid refresh token. Refresh tokens
// are not rotated; the same one stays valid until its natural expiry.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.JWT.GenerateAccessToken(claims.UserID)
}

type InviteInput struct {
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// Invite creates an inactive account holding a fresh invitation token and
// enqueues the invitation email. The email send is fire-and-forget: a publish
// failure is logged and the created account stays, since the invitation can
// be resent.
func (s *UserService) Invite(ctx context.Context, in InviteInput) (*entity.User, error) {
	if existing, err := s.Repo.GetByEmail(in.Email); err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	token := uuid.NewString()
	now := time.Now().UTC()
	u := &entity.User{
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IsAdmin:          in.IsAdmin,
		IsActive:         false,
		InvitationToken:  &token,
		InvitationSentAt: &now,
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.sendInvitation(ctx, u, token)
	return u, nil
}

// ResendInvitation issues a fresh token for a still-inactive account,
// invalidating the previous one, and resends the invitation email.
func (s *UserService) ResendInvitation(ctx context.Context, userID string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if u.IsActive {
		return ErrAlreadyActive
	}

	token := uuid.NewString()
	now := time.Now().UTC()
	u.InvitationToken = &token
	u.InvitationSentAt = &now
	if err := s.Repo.Update(u); err != nil {
		return err
	}

	s.sendInvitation(ctx, u, token)
	return nil
}

// AcceptInvitation consumes an invitation token exactly once: it sets the
// password, activates the account and clears the token, so a second accept
// with the same token fails as not found.
func (s *UserService) AcceptInvitation(ctx context.Context, token, password string) error {
	u, err := s.Repo.GetByInvitationToken(token)
	if err != nil || u == nil {
		return ErrInvalidInvitation
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}
	now := time.Now().UTC()
	u.IsActive = true
	u.InvitationAcceptedAt = &now
	u.InvitationToken = nil
	return s.Repo.Update(u)
}

func (s *UserService) sendInvitation(ctx context.Context, u *entity.User, token string) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled {
		return
	}
	link := s.Cfg.InviteAcceptURL + "?token=" + token
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateInvitation,
		Data: map[string]any{
			"AcceptLink":    link,
			"FirstName":     u.FirstName,
			"ExpiresInDays": int(s.Cfg.InviteExpiry.Hours() / 24),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("invitation email enqueue failed")
	}
}

func (s *UserService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) ListUsers() ([]*entity.User, error) {
	return s.Repo.List()
}

type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	IsAdmin   *bool
	IsActive  *bool
}

// UpdateUser applies the provided fields. An email change is checked against
// the uniqueness constraint and reported as a conflict.
func (s *UserService) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Email != nil && *in.Email != u.Email {
		if existing, err := s.Repo.GetByEmail(*in.Email); err == nil && existing != nil {
			return nil, ErrEmailExists
		}
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.IsAdmin != nil {
		u.IsAdmin = *in.IsAdmin
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.Repo.Update(u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return u, nil
}

// DeleteUser removes an account. Administrators cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, userID, actorID string) error {
	if userID == actorID {
		return ErrSelfDelete
	}
	if _, err := s.Repo.GetByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.Repo.Delete(userID)
}
