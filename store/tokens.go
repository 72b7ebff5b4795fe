package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespaces per token purpose. Both flows share one store, the
// prefix keeps a reset token from ever redeeming as a verification token.
const (
	PurposeForgotPassword = "forgot-password:"
	PurposeVerifyEmail    = "verify-email:"
)

// TokenStore holds single-use ephemeral tokens with a TTL.
type TokenStore interface {
	// Set stores value under purpose+token for ttl.
	Set(ctx context.Context, purpose, token, value string, ttl time.Duration) error
	// Consume atomically fetches and deletes a token. The second return
	// is false when the token doesn't exist, has expired, or was already
	// redeemed. Two concurrent redemptions can never both succeed.
	Consume(ctx context.Context, purpose, token string) (string, bool, error)
}

type RedisTokens struct {
	client *redis.Client
}

func NewRedisTokens(client *redis.Client) *RedisTokens {
	return &RedisTokens{client: client}
}

func (t *RedisTokens) Set(ctx context.Context, purpose, token, value string, ttl time.Duration) error {
	return t.client.Set(ctx, purpose+token, value, ttl).Err()
}

func (t *RedisTokens) Consume(ctx context.Context, purpose, token string) (string, bool, error) {
	val, err := t.client.GetDel(ctx, purpose+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return val, true, nil
}
