package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses. Anything
// else coming out of a service is surfaced as a 500 with the raw message.
var (
	ErrEmailTaken      = errors.New("email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrMissingFields   = errors.New("missing data")
)
