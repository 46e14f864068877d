package application

import "errors"

// Sentinel errors returned by the services. Handlers match these with
// errors.Is and translate them to HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInactiveAccount    = errors.New("account is not active")
	ErrAlreadyActive      = errors.New("user is already active")
	ErrInvalidInvitation  = errors.New("invalid invitation token")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrPropertyNotFound   = errors.New("property not found")
)
