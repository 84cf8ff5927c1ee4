package application

import "errors"

var (
	// ErrDuplicateEmail is surfaced when registration targets an email
	// that already has a row.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound means a valid token references an account that no
	// longer exists.
	ErrUserNotFound = errors.New("user not found")
)
