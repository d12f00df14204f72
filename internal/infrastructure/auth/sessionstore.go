package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps one active refresh token hash per session in Redis.
// Rotating the token replaces the hash, so a stolen previous refresh token
// stops working after its first use.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, refreshExpDays int) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    time.Duration(refreshExpDays) * 24 * time.Hour,
	}
}

func (s *SessionStore) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Save registers a new session with its refresh token.
func (s *SessionStore) Save(ctx context.Context, sessionID, refreshToken string) error {
	if err := s.client.Set(ctx, s.key(sessionID), hashToken(refreshToken), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Rotate swaps the stored refresh token after verifying the presented one.
// Returns false when the session is unknown or the token does not match.
func (s *SessionStore) Rotate(ctx context.Context, sessionID, oldToken, newToken string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load session: %w", err)
	}
	if stored != hashToken(oldToken) {
		return false, nil
	}

	if err := s.client.Set(ctx, s.key(sessionID), hashToken(newToken), s.ttl).Err(); err != nil {
		return false, fmt.Errorf("failed to rotate session: %w", err)
	}
	return true, nil
}

// IsValid reports whether the session exists and the token matches.
func (s *SessionStore) IsValid(ctx context.Context, sessionID, refreshToken string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load session: %w", err)
	}
	return stored == hashToken(refreshToken), nil
}

// Revoke removes the session, invalidating its refresh token.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
