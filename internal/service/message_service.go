package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
)

type MessageService struct {
	messages repository.MessageRepository
	replies  repository.ReplyRepository
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository, replies repository.ReplyRepository, now func() time.Time) *MessageService {
	if now == nil {
		now = time.Now
	}

	return &MessageService{
		messages: messages,
		replies:  replies,
		now:      now,
	}
}

// Send inserts an anonymous (or named) message. The session foreign key
// rejects inserts for sessions that do not exist.
func (s *MessageService) Send(ctx context.Context, sessionID domain.SessionID, content string, senderName *string) (domain.MessageID, error) {
	if sessionID == 0 || strings.TrimSpace(content) == "" {
		return 0, domain.ErrValidation
	}

	m := &domain.Message{
		SessionID:  sessionID,
		SenderName: senderName,
		Content:    content,
		CreatedAt:  s.now(),
	}

	id, err := s.messages.Create(ctx, m)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("messageRepo.Create: %w", err)
	}

	return id, nil
}

// Reply inserts a threaded reply under an existing message.
func (s *MessageService) Reply(ctx context.Context, messageID domain.MessageID, content string, sender *string) (domain.ReplyID, error) {
	if messageID == 0 || strings.TrimSpace(content) == "" {
		return 0, domain.ErrValidation
	}

	r := &domain.Reply{
		MessageID: messageID,
		Content:   content,
		Sender:    sender,
		CreatedAt: s.now(),
	}

	id, err := s.replies.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, domain.ErrMessageNotFound
		}
		return 0, fmt.Errorf("replyRepo.Create: %w", err)
	}

	return id, nil
}
