package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessions(time.Hour)

	sid, err := s.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, ok, err := s.UserID(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	_, ok, err = s.UserID(ctx, "unknown-sid")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Destroy(ctx, sid))

	_, ok, err = s.UserID(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionsExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessions(-time.Second)

	sid, err := s.Create(ctx, 7)
	require.NoError(t, err)

	_, ok, err := s.UserID(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTokensConsumeOnce(t *testing.T) {
	ctx := context.Background()
	tokens := NewMemoryTokens()

	require.NoError(t, tokens.Set(ctx, PurposeForgotPassword, "tok", "123", time.Hour))

	val, ok, err := tokens.Consume(ctx, PurposeForgotPassword, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123", val)

	_, ok, err = tokens.Consume(ctx, PurposeForgotPassword, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTokensPurposesDontCollide(t *testing.T) {
	ctx := context.Background()
	tokens := NewMemoryTokens()

	require.NoError(t, tokens.Set(ctx, PurposeVerifyEmail, "tok", "a@x.com", time.Hour))

	_, ok, err := tokens.Consume(ctx, PurposeForgotPassword, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	val, ok, err := tokens.Consume(ctx, PurposeVerifyEmail, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", val)
}

func TestMemoryTokensExpired(t *testing.T) {
	ctx := context.Background()
	tokens := NewMemoryTokens()

	require.NoError(t, tokens.Set(ctx, PurposeVerifyEmail, "tok", "a@x.com", -time.Second))

	_, ok, err := tokens.Consume(ctx, PurposeVerifyEmail, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTokensConcurrentConsume(t *testing.T) {
	ctx := context.Background()
	tokens := NewMemoryTokens()

	require.NoError(t, tokens.Set(ctx, PurposeForgotPassword, "tok", "9", time.Hour))

	var wg sync.WaitGroup
	var mu sync.Mutex
	redeemed := 0

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, ok, err := tokens.Consume(ctx, PurposeForgotPassword, "tok")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				redeemed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, redeemed)
}
