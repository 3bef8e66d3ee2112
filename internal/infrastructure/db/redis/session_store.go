package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

const defaultSessionKey = "auth:session"

// SessionStore keeps the device's single authentication slot in a Redis
// hash. The whole slot is written with one HSET and cleared with one DEL, so
// id, role and admin flag always change together. The slot has no TTL;
// sessions end only through logout.
type SessionStore struct {
	client *redis.Client
	key    string
}

// NewSessionStore wraps the given Redis client. An empty key falls back to
// the default slot key.
func NewSessionStore(client *redis.Client, key string) *SessionStore {
	if key == "" {
		key = defaultSessionKey
	}
	return &SessionStore{client: client, key: key}
}

// CurrentUserID returns the latest value of the slot, "" when empty.
func (s *SessionStore) CurrentUserID(ctx context.Context) (string, error) {
	id, err := s.client.HGet(ctx, s.key, "user_id").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return id, nil
}

// SetCurrentUser overwrites the slot in a single HSET command.
func (s *SessionStore) SetCurrentUser(ctx context.Context, id string, role domain.UserRole, isAdmin bool) error {
	err := s.client.HSet(ctx, s.key,
		"user_id", id,
		"role", string(role),
		"is_admin", strconv.FormatBool(isAdmin),
	).Err()
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearCurrentUser deletes the slot. Deleting an absent key is a no-op.
func (s *SessionStore) ClearCurrentUser(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
