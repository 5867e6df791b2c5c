package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/emo-circle/backend/internal/repository"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
Thin abstraction over *pgxpool.Pool / pgx.Tx so repositories can run
either standalone or inside a transaction (and be mocked in tests).
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return repository.ErrAlreadyExists
		case "23503": // foreign key violation: parent row is gone
			return repository.ErrNotFound
		}
	}

	return err
}

func toNullStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}

	return &s
}
