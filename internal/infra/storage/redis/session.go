package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/walletsync/internal/session"

	redis "github.com/redis/go-redis/v9"
)

// sessionStoragePrefix defines the base key prefix used for storing sessions in Redis.
const sessionStoragePrefix = "session"

// sessionStorageKey returns the Redis key holding the session of profile.
//
// Format: "session:{profile}"
func sessionStorageKey(profile string) string {
	return fmt.Sprintf("%s:%s", sessionStoragePrefix, profile)
}

// SaveSession implements session.Storage. The key expires together with
// the token; sessions without expiry are kept until deleted. A session
// that is already expired is removed instead of stored.
func (c *client) SaveSession(ctx context.Context, profile string, s session.Session) error {
	key := sessionStorageKey(profile)

	ttl := s.TTL(time.Now())
	if !s.ExpiresAt.IsZero() && ttl <= 0 {
		return c.conn.Del(ctx, key).Err()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, key, data, ttl).Err()
}

// LoadSession implements session.Storage.
func (c *client) LoadSession(ctx context.Context, profile string) (session.Session, error) {
	data, err := c.conn.Get(ctx, sessionStorageKey(profile)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, session.ErrNoSession
	}
	if err != nil {
		return session.Session{}, err
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return session.Session{}, fmt.Errorf("decode session %q: %w", profile, err)
	}
	return s, nil
}

// DeleteSession implements session.Storage.
func (c *client) DeleteSession(ctx context.Context, profile string) error {
	return c.conn.Del(ctx, sessionStorageKey(profile)).Err()
}

// Compile-time assertion to ensure *client satisfies the session.Storage interface
var _ session.Storage = new(client)
