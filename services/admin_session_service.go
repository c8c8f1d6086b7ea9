package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// ErrSessionNotFound means the token was logged out or its session expired.
var ErrSessionNotFound = errors.New("admin session not found")

const sessionKeyPrefix = "admin:session:"

// AdminSessionService keeps admin sessions in Redis keyed by token hash.
type AdminSessionService struct {
	rdb *redis.Client
	now func() time.Time
}

// NewAdminSessionService creates a new session service
func NewAdminSessionService(rdb *redis.Client) *AdminSessionService {
	return &AdminSessionService{rdb: rdb, now: time.Now}
}

func sessionKey(tokenHash string) string {
	return sessionKeyPrefix + tokenHash
}

// CreateSession stores a session that expires together with the token.
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	email string,
	token string,
	expiresAt time.Time,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	now := s.now()
	session := &models.AdminSession{
		ID:             uuid.Must(uuid.NewV7()).String(),
		AdminEmail:     email,
		TokenHash:      HashToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      expiresAt,
	}

	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil, fmt.Errorf("session already expired")
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, sessionKey(session.TokenHash), raw, ttl).Err(); err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, email)
	return session, nil
}

// TouchSession loads the session for token and records activity on it.
func (s *AdminSessionService) TouchSession(ctx context.Context, token string) (*models.AdminSession, error) {
	key := sessionKey(HashToken(token))

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session models.AdminSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	now := s.now()
	if session.IsExpired(now) {
		return nil, ErrSessionNotFound
	}

	session.LastActivityAt = now
	if updated, err := json.Marshal(&session); err == nil {
		// KEEPTTL leaves the original expiry untouched.
		if err := s.rdb.SetArgs(ctx, key, updated, redis.SetArgs{KeepTTL: true, Mode: "XX"}).Err(); err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("[session] failed to update session activity: %v", err)
		}
	}
	return &session, nil
}

// DeactivateSession deletes the session of token (logout).
func (s *AdminSessionService) DeactivateSession(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKey(HashToken(token))).Err(); err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}
	log.Printf("[session] deactivated session")
	return nil
}
