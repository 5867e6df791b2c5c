package postgres

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository/queries"
)

type EmotionRepo struct {
	q querier
}

func NewEmotionRepo(q querier) *EmotionRepo {
	return &EmotionRepo{q: q}
}

func (r *EmotionRepo) ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Emotion, error) {
	rows, err := r.q.Query(ctx, queries.QueryListEmotionsBySession, int64(sessionID))
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []domain.Emotion
	for rows.Next() {
		var (
			e    domain.Emotion
			sess int64
		)
		if err := rows.Scan(&sess, &e.Emotion, &e.Percentage); err != nil {
			return nil, err
		}
		e.SessionID = domain.SessionID(sess)
		out = append(out, e)
	}

	return out, rows.Err()
}
