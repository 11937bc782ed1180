package store

import "errors"

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken and ErrEmailTaken report which unique column a
	// register or rename collided on.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password, deliberately without telling which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
