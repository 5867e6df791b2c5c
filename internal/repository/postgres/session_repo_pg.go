package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
	"github.com/emo-circle/backend/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type SessionRepo struct {
	q querier
}

func NewSessionRepo(q querier) *SessionRepo {
	return &SessionRepo{q: q}
}

func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) (domain.SessionID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateSession,
		s.Name,
		s.Code,
		int64(s.FacilitatorID),
		string(s.Status),
		s.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.SessionID(id), nil
}

func (r *SessionRepo) GetByCode(ctx context.Context, code string) (*domain.Session, error) {
	var (
		id            int64
		name          string
		c             string
		facilitatorID int64
		status        string
		createdAt     time.Time
	)

	err := r.q.QueryRow(ctx, queries.QueryGetSessionByCode, code).Scan(
		&id,
		&name,
		&c,
		&facilitatorID,
		&status,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapPgError(err)
	}

	return &domain.Session{
		ID:            domain.SessionID(id),
		Name:          name,
		Code:          c,
		FacilitatorID: domain.UserID(facilitatorID),
		Status:        domain.SessionStatus(status),
		CreatedAt:     createdAt,
	}, nil
}

func (r *SessionRepo) ListByFacilitator(ctx context.Context, facilitatorID domain.UserID, status string) ([]repository.SessionListItem, error) {
	var statusArg any
	if status != "" {
		statusArg = status
	}

	rows, err := r.q.Query(ctx, queries.QueryListSessionsByFacilitator, int64(facilitatorID), statusArg)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []repository.SessionListItem
	for rows.Next() {
		var (
			item  repository.SessionListItem
			id    int64
			facID int64
			st    string
			count int
		)
		if err := rows.Scan(&id, &item.Name, &item.Code, &facID, &st, &item.CreatedAt, &count); err != nil {
			return nil, err
		}
		item.ID = domain.SessionID(id)
		item.FacilitatorID = domain.UserID(facID)
		item.Status = domain.SessionStatus(st)
		item.ParticipantCount = count
		out = append(out, item)
	}

	return out, rows.Err()
}

func (r *SessionRepo) Close(ctx context.Context, id domain.SessionID) error {
	// No RowsAffected check: closing an unknown or already closed
	// session is not an error.
	_, err := r.q.Exec(ctx, queries.QueryCloseSession, int64(id))
	if err != nil {
		return mapPgError(err)
	}

	return nil
}
