package entity

import (
	"time"

	"github.com/realtexai/realtex-api/pkg/helpers"
)

// User is the aggregate root for the identity domain.
// Accounts are provisioned by administrators: a user starts inactive with an
// invitation token and no password, and becomes active when the invitation is
// accepted. PasswordHash is empty until then.
type User struct {
	ID                   string
	Email                string
	PasswordHash         string
	FirstName            string
	LastName             string
	IsAdmin              bool
	IsActive             bool
	InvitationToken      *string
	InvitationSentAt     *time.Time
	InvitationAcceptedAt *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Always false for accounts that have not set a password yet.
func (u *User) CheckPassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return helpers.CompareHashAndPassword(u.PasswordHash, plain)
}

// SetPassword hashes plain with bcrypt and stores the result.
func (u *User) SetPassword(plain string) error {
	h, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = h
	return nil
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}
