package domain

import (
	"strings"
	"time"
)

type UserID int64

type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser expects an already computed password hash.
func NewUser(name, email, passwordHash string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return nil, ErrValidation
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, ErrEmptyPasswordHash
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

// NormalizeEmail is the canonical form used for both storage and lookups.
// Register and Login must agree on it, or a mixed-case signup locks the
// user out.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
