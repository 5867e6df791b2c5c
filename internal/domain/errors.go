package domain

import "errors"

var (
	ErrValidation        = errors.New("missing or empty required field")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPasswordHash = errors.New("empty password hash")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrInvalidCode       = errors.New("invalid session code")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session has ended")
	ErrMessageNotFound = errors.New("message not found")
)
