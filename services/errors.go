package services

import "errors"

// Validation and authentication failures. Handlers map each one to the
// message shown to the shopper.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrMissingFields      = errors.New("name and email are required")
)
