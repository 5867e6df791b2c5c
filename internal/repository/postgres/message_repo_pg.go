package postgres

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository/queries"
)

type MessageRepo struct {
	q querier
}

func NewMessageRepo(q querier) *MessageRepo {
	return &MessageRepo{q: q}
}

func (r *MessageRepo) Create(ctx context.Context, m *domain.Message) (domain.MessageID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateMessage,
		int64(m.SessionID),
		toNullStringPtr(m.SenderName),
		m.Content,
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.MessageID(id), nil
}

func (r *MessageRepo) ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Message, error) {
	rows, err := r.q.Query(ctx, queries.QueryListMessagesBySession, int64(sessionID))
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var (
			m    domain.Message
			id   int64
			sess int64
		)
		if err := rows.Scan(&id, &sess, &m.SenderName, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.ID = domain.MessageID(id)
		m.SessionID = domain.SessionID(sess)
		out = append(out, m)
	}

	return out, rows.Err()
}
