package store

import "errors"

var (
	// ErrDuplicateUsername is returned by CreateUser when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned by VerifyCredentials for both an
	// unknown username and a wrong password. Callers must not distinguish
	// the two cases to the end user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a user id does not exist.
	ErrNotFound = errors.New("not found")
)
