package repository

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (domain.MessageID, error)
	// ListBySession returns messages newest first.
	ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Message, error)
}

type ReplyRepository interface {
	Create(ctx context.Context, r *domain.Reply) (domain.ReplyID, error)
	// ListByMessage returns replies oldest first.
	ListByMessage(ctx context.Context, messageID domain.MessageID) ([]domain.Reply, error)
}
