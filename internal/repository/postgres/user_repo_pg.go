package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
	"github.com/emo-circle/backend/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	q querier
}

// NewUserRepo accepts a *pgxpool.Pool or pgx.Tx.
func NewUserRepo(q querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (domain.UserID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateUser,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.UserID(id), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var (
		id           int64
		name         string
		mail         string
		passwordHash string
		createdAt    time.Time
	)

	err := r.q.QueryRow(ctx, queries.QueryGetUserByEmail, strings.TrimSpace(email)).Scan(
		&id,
		&name,
		&mail,
		&passwordHash,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapPgError(err)
	}

	return &domain.User{
		ID:           domain.UserID(id),
		Name:         name,
		Email:        mail,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, queries.QueryExistsUserByEmail, strings.TrimSpace(email)).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, mapPgError(err)
	}

	return true, nil
}
