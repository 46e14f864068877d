package repository

import "github.com/realtexai/realtex-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// Implementations must surface duplicate-email writes as ErrDuplicateEmail so
// callers can report a conflict instead of silently overwriting.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByInvitationToken(token string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
