package service

import (
	"crypto/subtle"
	"strings"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher hides how student passwords are stored so the login check
// does not change when hashing is switched on.
type PasswordMatcher interface {
	// Hash returns the value to persist for a new password.
	Hash(password string) (string, error)
	// Matches compares a stored value against a submitted password.
	Matches(stored, password string) bool
}

// NewPasswordMatcher picks the matcher named by PASSWORD_HASHING.
func NewPasswordMatcher(cfg *config.Config) PasswordMatcher {
	if cfg.PasswordHashing == config.HashingBcrypt {
		return BcryptMatcher{Cost: cfg.BcryptCost}
	}
	return PlainMatcher{}
}

// PlainMatcher stores passwords as given. It exists for compatibility with
// data created before hashing was introduced.
type PlainMatcher struct{}

func (PlainMatcher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainMatcher) Matches(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// BcryptMatcher stores bcrypt hashes.
type BcryptMatcher struct {
	Cost int
}

func (m BcryptMatcher) Hash(password string) (string, error) {
	cost := m.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

func (m BcryptMatcher) Matches(stored, password string) bool {
	if !isBcryptHash(stored) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
