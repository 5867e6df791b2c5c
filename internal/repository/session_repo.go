package repository

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
)

// SessionListItem is a session row annotated with its live participant count.
type SessionListItem struct {
	domain.Session
	ParticipantCount int
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (domain.SessionID, error)
	GetByCode(ctx context.Context, code string) (*domain.Session, error)
	// ListByFacilitator filters by exact status when status is non-empty.
	ListByFacilitator(ctx context.Context, facilitatorID domain.UserID, status string) ([]SessionListItem, error)
	// Close sets status to Closed unconditionally; unknown ids are not an error.
	Close(ctx context.Context, id domain.SessionID) error
}

type ParticipantRepository interface {
	Create(ctx context.Context, p *domain.Participant) (domain.ParticipantID, error)
	ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Participant, error)
}

type EmotionRepository interface {
	ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Emotion, error)
}
