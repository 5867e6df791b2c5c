package domain

import (
	"strings"
	"time"
)

type SessionID int64

type SessionStatus string

const (
	StatusActive SessionStatus = "Active"
	StatusClosed SessionStatus = "Closed"
)

// Session is a facilitator-owned discussion identified by a short shareable code.
type Session struct {
	ID            SessionID     `db:"id"`
	Name          string        `db:"name"`
	Code          string        `db:"code"`
	FacilitatorID UserID        `db:"facilitator_id"`
	Status        SessionStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
}

func NewSession(name, code string, facilitatorID UserID, now time.Time) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" || facilitatorID == 0 {
		return nil, ErrValidation
	}
	if len(code) != CodeLength {
		return nil, ErrInvalidCode
	}

	return &Session{
		Name:          name,
		Code:          code,
		FacilitatorID: facilitatorID,
		Status:        StatusActive,
		CreatedAt:     now,
	}, nil
}

func (s *Session) IsActive() bool {
	return s.Status == StatusActive
}

// CodeLength is fixed by the join-by-code UX; codes are drawn from [A-Z0-9].
const CodeLength = 6
