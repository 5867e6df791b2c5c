package service

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
)

// In-memory repository fakes. They enforce the same uniqueness and
// referential rules the schema does, so services see realistic errors.

type fakeUserRepo struct {
	users  []*domain.User
	nextID domain.UserID
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (domain.UserID, error) {
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return 0, repository.ErrAlreadyExists
		}
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users = append(f.users, &cp)
	return cp.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeParticipantRepo struct {
	participants []*domain.Participant
	nextID       domain.ParticipantID
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *domain.Participant) (domain.ParticipantID, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	f.participants = append(f.participants, &cp)
	return cp.ID, nil
}

func (f *fakeParticipantRepo) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, p := range f.participants {
		if p.SessionID == sessionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) countBySession(sessionID domain.SessionID) int {
	n := 0
	for _, p := range f.participants {
		if p.SessionID == sessionID {
			n++
		}
	}
	return n
}

type fakeSessionRepo struct {
	sessions     []*domain.Session
	participants *fakeParticipantRepo
	nextID       domain.SessionID
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.Session) (domain.SessionID, error) {
	for _, ex := range f.sessions {
		if ex.Code == s.Code {
			return 0, repository.ErrAlreadyExists
		}
	}
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	f.sessions = append(f.sessions, &cp)
	return cp.ID, nil
}

func (f *fakeSessionRepo) GetByCode(_ context.Context, code string) (*domain.Session, error) {
	for _, s := range f.sessions {
		if s.Code == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSessionRepo) ListByFacilitator(_ context.Context, facilitatorID domain.UserID, status string) ([]repository.SessionListItem, error) {
	var out []repository.SessionListItem
	for _, s := range f.sessions {
		if s.FacilitatorID != facilitatorID {
			continue
		}
		if status != "" && string(s.Status) != status {
			continue
		}
		item := repository.SessionListItem{Session: *s}
		if f.participants != nil {
			item.ParticipantCount = f.participants.countBySession(s.ID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeSessionRepo) Close(_ context.Context, id domain.SessionID) error {
	for _, s := range f.sessions {
		if s.ID == id {
			s.Status = domain.StatusClosed
		}
	}
	// unknown ids are fine
	return nil
}

type fakeMessageRepo struct {
	sessions *fakeSessionRepo
	messages []*domain.Message
	nextID   domain.MessageID
}

func (f *fakeMessageRepo) Create(_ context.Context, m *domain.Message) (domain.MessageID, error) {
	if f.sessions != nil {
		found := false
		for _, s := range f.sessions.sessions {
			if s.ID == m.SessionID {
				found = true
				break
			}
		}
		if !found {
			return 0, repository.ErrNotFound
		}
	}
	f.nextID++
	cp := *m
	cp.ID = f.nextID
	f.messages = append(f.messages, &cp)
	return cp.ID, nil
}

func (f *fakeMessageRepo) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Message, error) {
	// newest first, as the SQL orders it
	var out []domain.Message
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i].SessionID == sessionID {
			out = append(out, *f.messages[i])
		}
	}
	return out, nil
}

type fakeReplyRepo struct {
	messages *fakeMessageRepo
	replies  []*domain.Reply
	nextID   domain.ReplyID
}

func (f *fakeReplyRepo) Create(_ context.Context, r *domain.Reply) (domain.ReplyID, error) {
	if f.messages != nil {
		found := false
		for _, m := range f.messages.messages {
			if m.ID == r.MessageID {
				found = true
				break
			}
		}
		if !found {
			return 0, repository.ErrNotFound
		}
	}
	f.nextID++
	cp := *r
	cp.ID = f.nextID
	f.replies = append(f.replies, &cp)
	return cp.ID, nil
}

func (f *fakeReplyRepo) ListByMessage(_ context.Context, messageID domain.MessageID) ([]domain.Reply, error) {
	// oldest first
	var out []domain.Reply
	for _, r := range f.replies {
		if r.MessageID == messageID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeEmotionRepo struct {
	emotions []domain.Emotion
}

func (f *fakeEmotionRepo) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Emotion, error) {
	var out []domain.Emotion
	for _, e := range f.emotions {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// newFixture wires the fakes together the way main wires the real repos.
type fixture struct {
	users        *fakeUserRepo
	sessions     *fakeSessionRepo
	participants *fakeParticipantRepo
	messages     *fakeMessageRepo
	replies      *fakeReplyRepo
	emotions     *fakeEmotionRepo
}

func newFixture() *fixture {
	participants := &fakeParticipantRepo{}
	sessions := &fakeSessionRepo{participants: participants}
	messages := &fakeMessageRepo{sessions: sessions}
	replies := &fakeReplyRepo{messages: messages}

	return &fixture{
		users:        &fakeUserRepo{},
		sessions:     sessions,
		participants: participants,
		messages:     messages,
		replies:      replies,
		emotions:     &fakeEmotionRepo{},
	}
}
