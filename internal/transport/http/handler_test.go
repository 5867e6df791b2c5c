package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
	"github.com/emo-circle/backend/internal/security"
	"github.com/emo-circle/backend/internal/service"
)

// Minimal in-memory repos so the full stack (router → handler → service)
// runs without a database.

type memUsers struct {
	users  []*domain.User
	nextID domain.UserID
}

func (m *memUsers) Create(_ context.Context, u *domain.User) (domain.UserID, error) {
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return 0, repository.ErrAlreadyExists
		}
	}
	m.nextID++
	cp := *u
	cp.ID = m.nextID
	m.users = append(m.users, &cp)
	return cp.ID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type memStore struct {
	sessions     []*domain.Session
	participants []*domain.Participant
	messages     []*domain.Message
	replies      []*domain.Reply
	emotions     []domain.Emotion

	nextSession     domain.SessionID
	nextParticipant domain.ParticipantID
	nextMessage     domain.MessageID
	nextReply       domain.ReplyID
}

type memSessions struct{ s *memStore }

func (m memSessions) Create(_ context.Context, sess *domain.Session) (domain.SessionID, error) {
	for _, ex := range m.s.sessions {
		if ex.Code == sess.Code {
			return 0, repository.ErrAlreadyExists
		}
	}
	m.s.nextSession++
	cp := *sess
	cp.ID = m.s.nextSession
	m.s.sessions = append(m.s.sessions, &cp)
	return cp.ID, nil
}

func (m memSessions) GetByCode(_ context.Context, code string) (*domain.Session, error) {
	for _, s := range m.s.sessions {
		if s.Code == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m memSessions) ListByFacilitator(_ context.Context, facilitatorID domain.UserID, status string) ([]repository.SessionListItem, error) {
	var out []repository.SessionListItem
	for _, s := range m.s.sessions {
		if s.FacilitatorID != facilitatorID {
			continue
		}
		if status != "" && string(s.Status) != status {
			continue
		}
		item := repository.SessionListItem{Session: *s}
		for _, p := range m.s.participants {
			if p.SessionID == s.ID {
				item.ParticipantCount++
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (m memSessions) Close(_ context.Context, id domain.SessionID) error {
	for _, s := range m.s.sessions {
		if s.ID == id {
			s.Status = domain.StatusClosed
		}
	}
	return nil
}

type memParticipants struct{ s *memStore }

func (m memParticipants) Create(_ context.Context, p *domain.Participant) (domain.ParticipantID, error) {
	m.s.nextParticipant++
	cp := *p
	cp.ID = m.s.nextParticipant
	m.s.participants = append(m.s.participants, &cp)
	return cp.ID, nil
}

func (m memParticipants) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, p := range m.s.participants {
		if p.SessionID == sessionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memMessages struct{ s *memStore }

func (m memMessages) Create(_ context.Context, msg *domain.Message) (domain.MessageID, error) {
	found := false
	for _, s := range m.s.sessions {
		if s.ID == msg.SessionID {
			found = true
		}
	}
	if !found {
		return 0, repository.ErrNotFound
	}
	m.s.nextMessage++
	cp := *msg
	cp.ID = m.s.nextMessage
	m.s.messages = append(m.s.messages, &cp)
	return cp.ID, nil
}

func (m memMessages) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(m.s.messages) - 1; i >= 0; i-- {
		if m.s.messages[i].SessionID == sessionID {
			out = append(out, *m.s.messages[i])
		}
	}
	return out, nil
}

type memReplies struct{ s *memStore }

func (m memReplies) Create(_ context.Context, r *domain.Reply) (domain.ReplyID, error) {
	found := false
	for _, msg := range m.s.messages {
		if msg.ID == r.MessageID {
			found = true
		}
	}
	if !found {
		return 0, repository.ErrNotFound
	}
	m.s.nextReply++
	cp := *r
	cp.ID = m.s.nextReply
	m.s.replies = append(m.s.replies, &cp)
	return cp.ID, nil
}

func (m memReplies) ListByMessage(_ context.Context, messageID domain.MessageID) ([]domain.Reply, error) {
	var out []domain.Reply
	for _, r := range m.s.replies {
		if r.MessageID == messageID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type memEmotions struct{ s *memStore }

func (m memEmotions) ListBySession(_ context.Context, sessionID domain.SessionID) ([]domain.Emotion, error) {
	var out []domain.Emotion
	for _, e := range m.s.emotions {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) (http.Handler, *memStore) {
	t.Helper()

	store := &memStore{}
	users := &memUsers{}

	authSvc := service.NewAuthService(users, security.BcryptConfig{Cost: 4, MinLength: 4}, nil)
	sessionSvc := service.NewSessionService(
		memSessions{store}, memParticipants{store}, memMessages{store}, memReplies{store}, memEmotions{store}, nil)
	messageSvc := service.NewMessageService(memMessages{store}, memReplies{store}, nil)

	h := NewHandler(authSvc, sessionSvc, messageSvc)
	return NewRouter(h), store
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/register", RegisterRequest{
		Name: "Sarah", Email: "sarah@example.com", Password: "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate email", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/register", RegisterRequest{
			Name: "Other", Email: "sarah@example.com", Password: "different",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/register", RegisterRequest{Email: "x@y.z"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login ok, no hash echoed", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{
			Email: "sarah@example.com", Password: "secret",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		user := body["user"].(map[string]any)
		assert.Equal(t, "Sarah", user["name"])
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("uniform 401", func(t *testing.T) {
		wrong := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{
			Email: "sarah@example.com", Password: "not-it",
		})
		unknown := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{
			Email: "nobody@example.com", Password: "secret",
		})
		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	})
}

func TestSessionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/", CreateSessionRequest{
		Name: "Retro", FacilitatorID: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	code := decode(t, rec)["sessionCode"].(string)
	require.Regexp(t, `^[A-Z0-9]{6}$`, code)

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/sessions/", CreateSessionRequest{Name: "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list requires facilitator_id", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list with count", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/?facilitator_id=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		sessions := decode(t, rec)["sessions"].([]any)
		require.Len(t, sessions, 1)
		first := sessions[0].(map[string]any)
		assert.Equal(t, "Active", first["status"])
		assert.Equal(t, float64(0), first["participants"])
	})

	t.Run("fresh detail has empty collections", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/details_by_code?code="+code, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		sess := decode(t, rec)["session"].(map[string]any)
		assert.Equal(t, "Active", sess["status"])
		assert.Empty(t, sess["participants"])
		assert.Empty(t, sess["messages"])
		assert.Empty(t, sess["emotions"])
	})

	t.Run("detail unknown code", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/details_by_code?code=ZZZZZZ", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("join and end", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/sessions/member/join", JoinRequest{
			SessionCode: code, MemberName: "Ayu",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.NotZero(t, body["memberId"])
		assert.Len(t, body["participants"].([]any), 1)

		// end twice: idempotent
		rec = doJSON(t, srv, http.MethodPut, "/api/sessions/1/end", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, srv, http.MethodPut, "/api/sessions/1/end", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		// closed session rejects late joiners
		rec = doJSON(t, srv, http.MethodPost, "/api/sessions/member/join", JoinRequest{
			SessionCode: code, MemberName: "Late",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMessagesAndReplies(t *testing.T) {
	srv, store := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/", CreateSessionRequest{
		Name: "Retro", FacilitatorID: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	code := decode(t, rec)["sessionCode"].(string)

	rec = doJSON(t, srv, http.MethodPost, "/api/messages/", SendMessageRequest{
		SessionID: 1, Content: "older message",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	name := "Ayu"
	rec = doJSON(t, srv, http.MethodPost, "/api/messages/", SendMessageRequest{
		SessionID: 1, Content: "newer message", SenderName: &name,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("missing content", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/messages/", SendMessageRequest{SessionID: 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("replies", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/messages/1/reply", ReplyRequest{Content: "first reply"})
		assert.Equal(t, http.StatusCreated, rec.Code)
		rec = doJSON(t, srv, http.MethodPost, "/api/messages/1/reply", ReplyRequest{Content: "second reply"})
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, srv, http.MethodPost, "/api/messages/1/reply", ReplyRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("detail ordering", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/details_by_code?code="+code, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		sess := decode(t, rec)["session"].(map[string]any)
		msgs := sess["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "newer message", msgs[0].(map[string]any)["content"])
		assert.Equal(t, "older message", msgs[1].(map[string]any)["content"])

		replies := msgs[1].(map[string]any)["replies"].([]any)
		require.Len(t, replies, 2)
		assert.Equal(t, "first reply", replies[0].(map[string]any)["content"])
		assert.Equal(t, "second reply", replies[1].(map[string]any)["content"])
	})

	t.Run("emotion colors", func(t *testing.T) {
		store.emotions = append(store.emotions,
			domain.Emotion{SessionID: 1, Emotion: "happy", Percentage: 75},
			domain.Emotion{SessionID: 1, Emotion: "bored", Percentage: 25},
		)

		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/details_by_code?code="+code, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		sess := decode(t, rec)["session"].(map[string]any)
		emotions := sess["emotions"].([]any)
		require.Len(t, emotions, 2)
		assert.Equal(t, "#FFD700", emotions[0].(map[string]any)["color"])
		assert.Equal(t, "#cccccc", emotions[1].(map[string]any)["color"])
	})
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/messages/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
