package postgres

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository/queries"
)

type ParticipantRepo struct {
	q querier
}

func NewParticipantRepo(q querier) *ParticipantRepo {
	return &ParticipantRepo{q: q}
}

func (r *ParticipantRepo) Create(ctx context.Context, p *domain.Participant) (domain.ParticipantID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateParticipant,
		int64(p.SessionID),
		p.Name,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.ParticipantID(id), nil
}

func (r *ParticipantRepo) ListBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Participant, error) {
	rows, err := r.q.Query(ctx, queries.QueryListParticipantsBySession, int64(sessionID))
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var (
			p    domain.Participant
			id   int64
			sess int64
		)
		if err := rows.Scan(&id, &sess, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.ID = domain.ParticipantID(id)
		p.SessionID = domain.SessionID(sess)
		out = append(out, p)
	}

	return out, rows.Err()
}
