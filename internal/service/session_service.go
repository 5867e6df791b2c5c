package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
	"github.com/emo-circle/backend/internal/security"
)

const (
	dateLayout      = "02/01/2006"
	clockLayout     = "15:04:05"
	timestampLayout = "02 Jan 2006 15:04"
)

// codeAttempts bounds retries when a generated code collides with an
// existing one (unique constraint on sessions.code).
const codeAttempts = 5

type SessionService struct {
	sessions     repository.SessionRepository
	participants repository.ParticipantRepository
	messages     repository.MessageRepository
	replies      repository.ReplyRepository
	emotions     repository.EmotionRepository

	genCode func(n int) (string, error)
	now     func() time.Time
}

func NewSessionService(
	sessions repository.SessionRepository,
	participants repository.ParticipantRepository,
	messages repository.MessageRepository,
	replies repository.ReplyRepository,
	emotions repository.EmotionRepository,
	now func() time.Time,
) *SessionService {
	if now == nil {
		now = time.Now
	}

	return &SessionService{
		sessions:     sessions,
		participants: participants,
		messages:     messages,
		replies:      replies,
		emotions:     emotions,
		genCode:      security.SessionCode,
		now:          now,
	}
}

// Create generates a shareable code and inserts an Active session.
func (s *SessionService) Create(ctx context.Context, name string, facilitatorID domain.UserID) (string, error) {
	if strings.TrimSpace(name) == "" || facilitatorID == 0 {
		return "", domain.ErrValidation
	}

	var lastErr error
	for i := 0; i < codeAttempts; i++ {
		code, err := s.genCode(domain.CodeLength)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}

		sess, err := domain.NewSession(name, code, facilitatorID, s.now())
		if err != nil {
			return "", err
		}

		if _, err := s.sessions.Create(ctx, sess); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				lastErr = err
				continue
			}
			return "", fmt.Errorf("sessionRepo.Create: %w", err)
		}
		return code, nil
	}

	return "", fmt.Errorf("session code collision after %d attempts: %w", codeAttempts, lastErr)
}

type SessionSummary struct {
	ID               domain.SessionID
	Name             string
	Code             string
	Status           domain.SessionStatus
	CreatedDate      string // dd/mm/yyyy
	CreatedTime      string // HH:MM:SS
	ParticipantCount int
}

func (s *SessionService) List(ctx context.Context, facilitatorID domain.UserID, status string) ([]SessionSummary, error) {
	if facilitatorID == 0 {
		return nil, domain.ErrValidation
	}

	items, err := s.sessions.ListByFacilitator(ctx, facilitatorID, status)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.ListByFacilitator: %w", err)
	}

	out := make([]SessionSummary, 0, len(items))
	for _, it := range items {
		out = append(out, SessionSummary{
			ID:               it.ID,
			Name:             it.Name,
			Code:             it.Code,
			Status:           it.Status,
			CreatedDate:      it.CreatedAt.Format(dateLayout),
			CreatedTime:      it.CreatedAt.Format(clockLayout),
			ParticipantCount: it.ParticipantCount,
		})
	}

	return out, nil
}

type ParticipantItem struct {
	ID   domain.ParticipantID
	Name string
}

type ReplyItem struct {
	ID        domain.ReplyID
	Content   string
	Sender    *string
	Timestamp string // dd Mon yyyy HH:MM
}

type MessageItem struct {
	ID         domain.MessageID
	Content    string
	SenderName *string
	Timestamp  string // dd Mon yyyy HH:MM
	Replies    []ReplyItem
}

type EmotionItem struct {
	Emotion    string
	Percentage float64
	Color      string
}

type SessionDetail struct {
	ID            domain.SessionID
	Name          string
	Code          string
	FacilitatorID domain.UserID
	Status        domain.SessionStatus
	CreatedAt     time.Time
	Participants  []ParticipantItem
	Messages      []MessageItem
	Emotions      []EmotionItem
}

// DetailsByCode assembles the full session view: participants, messages
// newest first with their replies oldest first, and colored emotion
// aggregates. Every call re-reads the store.
func (s *SessionService) DetailsByCode(ctx context.Context, code string) (*SessionDetail, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrValidation
	}

	sess, err := s.sessions.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByCode: %w", err)
	}

	participants, err := s.participants.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("participantRepo.ListBySession: %w", err)
	}

	messages, err := s.messages.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("messageRepo.ListBySession: %w", err)
	}

	emotions, err := s.emotions.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("emotionRepo.ListBySession: %w", err)
	}

	detail := &SessionDetail{
		ID:            sess.ID,
		Name:          sess.Name,
		Code:          sess.Code,
		FacilitatorID: sess.FacilitatorID,
		Status:        sess.Status,
		CreatedAt:     sess.CreatedAt,
		Participants:  make([]ParticipantItem, 0, len(participants)),
		Messages:      make([]MessageItem, 0, len(messages)),
		Emotions:      make([]EmotionItem, 0, len(emotions)),
	}

	for _, p := range participants {
		detail.Participants = append(detail.Participants, ParticipantItem{ID: p.ID, Name: p.Name})
	}

	for _, m := range messages {
		replies, err := s.replies.ListByMessage(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("replyRepo.ListByMessage: %w", err)
		}

		item := MessageItem{
			ID:         m.ID,
			Content:    m.Content,
			SenderName: m.SenderName,
			Timestamp:  m.CreatedAt.Format(timestampLayout),
			Replies:    make([]ReplyItem, 0, len(replies)),
		}
		for _, r := range replies {
			item.Replies = append(item.Replies, ReplyItem{
				ID:        r.ID,
				Content:   r.Content,
				Sender:    r.Sender,
				Timestamp: r.CreatedAt.Format(timestampLayout),
			})
		}
		detail.Messages = append(detail.Messages, item)
	}

	for _, e := range emotions {
		detail.Emotions = append(detail.Emotions, EmotionItem{
			Emotion:    e.Emotion,
			Percentage: e.Percentage,
			Color:      domain.EmotionColor(e.Emotion),
		})
	}

	return detail, nil
}

type JoinResult struct {
	SessionID    domain.SessionID
	MemberID     domain.ParticipantID
	Participants []ParticipantItem
}

// Join adds a named participant to an Active session found by code.
func (s *SessionService) Join(ctx context.Context, code, memberName string) (*JoinResult, error) {
	memberName = strings.TrimSpace(memberName)
	if strings.TrimSpace(code) == "" || memberName == "" {
		return nil, domain.ErrValidation
	}

	sess, err := s.sessions.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByCode: %w", err)
	}
	if !sess.IsActive() {
		return nil, domain.ErrSessionClosed
	}

	p := &domain.Participant{
		SessionID: sess.ID,
		Name:      memberName,
		CreatedAt: s.now(),
	}

	id, err := s.participants.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("participantRepo.Create: %w", err)
	}

	all, err := s.participants.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("participantRepo.ListBySession: %w", err)
	}

	res := &JoinResult{
		SessionID:    sess.ID,
		MemberID:     id,
		Participants: make([]ParticipantItem, 0, len(all)),
	}
	for _, it := range all {
		res.Participants = append(res.Participants, ParticipantItem{ID: it.ID, Name: it.Name})
	}

	return res, nil
}

// End closes a session. Idempotent; unknown ids succeed as well.
func (s *SessionService) End(ctx context.Context, id domain.SessionID) error {
	if err := s.sessions.Close(ctx, id); err != nil {
		return fmt.Errorf("sessionRepo.Close: %w", err)
	}
	return nil
}
