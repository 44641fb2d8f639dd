package store

import "errors"

// Typed errors returned by the repositories. The API layer is the only place
// that translates these into HTTP status codes; anything not in this list is
// treated as a store failure and never forwarded to the client.
var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an id does not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser is returned when a username is already taken.
	ErrDuplicateUser = errors.New("username already taken")
	// ErrInvalidCredential is returned on bad login. Callers must surface the
	// same message for unknown-user and wrong-password.
	ErrInvalidCredential = errors.New("invalid credentials")
)
