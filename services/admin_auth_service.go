package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login; callers must not
// reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuthService checks the single configured admin account.
type AdminAuthService struct {
	email        string
	passwordHash []byte
}

func NewAdminAuthService(email, passwordHash string) *AdminAuthService {
	return &AdminAuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
	}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate returns the canonical admin email on success.
func (s *AdminAuthService) Authenticate(email, password string) (string, error) {
	if s.email == "" || len(s.passwordHash) == 0 {
		return "", ErrInvalidCredentials
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	// Always run bcrypt so a wrong email costs as much as a wrong password.
	pwErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !emailOK || pwErr != nil {
		return "", ErrInvalidCredentials
	}
	return s.email, nil
}

// ════════════════════════════════════════════════════════════
// Token Hashing
// ════════════════════════════════════════════════════════════

// HashToken hashes a token using SHA256 so raw tokens are never stored
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
