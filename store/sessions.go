package store

import (
	"context"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "sess:"
	sessionIDSize = 32
)

// SessionStore associates an opaque client-held cookie value with the
// id of the authenticated user.
type SessionStore interface {
	// Create starts a session for userID and returns the opaque session id.
	Create(ctx context.Context, userID uint) (string, error)
	// UserID resolves a session id to a user id. The second return is
	// false when the session doesn't exist or has expired.
	UserID(ctx context.Context, sid string) (uint, bool, error)
	// Destroy removes a session. Destroying an unknown session is not
	// an error.
	Destroy(ctx context.Context, sid string) error
}

type RedisSessions struct {
	client *redis.Client
	maxAge time.Duration
}

func NewRedisSessions(client *redis.Client, maxAge time.Duration) *RedisSessions {
	return &RedisSessions{
		client: client,
		maxAge: maxAge,
	}
}

func (s *RedisSessions) Create(ctx context.Context, userID uint) (string, error) {
	sid, err := gonanoid.New(sessionIDSize)
	if err != nil {
		return "", err
	}

	err = s.client.Set(ctx, sessionPrefix+sid, formatUserID(userID), s.maxAge).Err()
	if err != nil {
		return "", err
	}

	return sid, nil
}

func (s *RedisSessions) UserID(ctx context.Context, sid string) (uint, bool, error) {
	val, err := s.client.Get(ctx, sessionPrefix+sid).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := parseUserID(val)
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

func (s *RedisSessions) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionPrefix+sid).Err()
}

func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseUserID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
