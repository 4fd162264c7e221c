// Package session maps raw refresh tokens to the identity they were
// issued for, backed by Redis with a TTL equal to the refresh token's
// validity window. Expired entries are evicted by Redis itself; there
// is no cleanup job.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned both when a refresh token was never
// stored and when its entry has expired. Callers cannot distinguish
// the two; both mean the token cannot be used to renew.
var ErrSessionNotFound = errors.New("session not found")

// Record is the stored value, keyed by the raw refresh token.
type Record struct {
	ClientID string `json:"client_id"`
	UserID   string `json:"user_id"`
}

// Store is safe for concurrent use; each operation touches a single
// key and requires no cross-key coordination.
type Store struct {
	redis *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

// Put stores the session record under the raw refresh token with the
// given TTL.
func (s *Store) Put(ctx context.Context, refreshToken, clientID, userID string, ttl time.Duration) error {
	value, err := json.Marshal(Record{ClientID: clientID, UserID: userID})
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	if err := s.redis.Set(ctx, refreshToken, value, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

// PutUntil stores the session record with a TTL derived from the
// refresh token's own expiry timestamp.
func (s *Store) PutUntil(ctx context.Context, refreshToken, clientID, userID string, expiresAt time.Time) error {
	return s.Put(ctx, refreshToken, clientID, userID, time.Until(expiresAt))
}

// Get returns the session record for a refresh token, or
// ErrSessionNotFound when the key is absent or expired.
func (s *Store) Get(ctx context.Context, refreshToken string) (*Record, error) {
	raw, err := s.redis.Get(ctx, refreshToken).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}

	return &record, nil
}

// Delete removes a session, invalidating the refresh token. Deleting
// an absent key is not an error.
func (s *Store) Delete(ctx context.Context, refreshToken string) error {
	if err := s.redis.Del(ctx, refreshToken).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
