package security

import (
	"github.com/emo-circle/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type BcryptConfig struct {
	Cost      int // default bcrypt.DefaultCost
	MinLength int // default 1: any non-empty password is accepted
}

func HashPassword(plain string, cfg *BcryptConfig) (string, error) {
	minLen := 1
	cost := bcrypt.DefaultCost

	if cfg != nil {
		if cfg.MinLength > 0 {
			minLen = cfg.MinLength
		}
		if cfg.Cost > 0 {
			cost = cfg.Cost
		}
	}

	if len(plain) < minLen {
		return "", domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
