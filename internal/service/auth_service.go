package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository"
	"github.com/emo-circle/backend/internal/security"
)

type AuthService struct {
	users      repository.UserRepository
	passPolicy security.BcryptConfig
	now        func() time.Time
}

func NewAuthService(users repository.UserRepository, passPolicy security.BcryptConfig, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}

	return &AuthService{
		users:      users,
		passPolicy: passPolicy,
		now:        now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		slog.Error("auth.register.existsByEmail failed", slog.Any("err", err))
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := security.HashPassword(password, &s.passPolicy)
	if err != nil {
		slog.Error("auth.register.hashPassword failed", slog.Any("err", err))
		return nil, err
	}

	u, err := domain.NewUser(name, email, hash, s.now())
	if err != nil {
		return nil, err
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		// The unique constraint closes the check-then-insert race.
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.ErrEmailTaken
		}
		slog.Error("auth.register.createUser failed", slog.Any("err", err))
		return nil, err
	}
	u.ID = id

	return u, nil
}

// Login authenticates by email+password. Unknown email and wrong password
// report the same error so the response never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		slog.Error("auth.login.getByEmail failed", slog.Any("err", err))
		return nil, err
	}

	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return u, nil
}
