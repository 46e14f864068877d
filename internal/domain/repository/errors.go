package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a create or update would violate the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("duplicate email")
)
