package store

import (
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// In-memory implementations of both stores. Used by the tests and for
// running the server without a redis instance at hand.

type memEntry struct {
	value     string
	expiresAt time.Time
}

func (e memEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

type MemorySessions struct {
	mu     sync.Mutex
	maxAge time.Duration
	data   map[string]memEntry
}

func NewMemorySessions(maxAge time.Duration) *MemorySessions {
	return &MemorySessions{
		maxAge: maxAge,
		data:   map[string]memEntry{},
	}
}

func (s *MemorySessions) Create(_ context.Context, userID uint) (string, error) {
	sid, err := gonanoid.New(sessionIDSize)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sid] = memEntry{
		value:     formatUserID(userID),
		expiresAt: time.Now().Add(s.maxAge),
	}

	return sid, nil
}

func (s *MemorySessions) UserID(_ context.Context, sid string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sid]
	if !ok || e.expired() {
		delete(s.data, sid)
		return 0, false, nil
	}

	id, err := parseUserID(e.value)
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

func (s *MemorySessions) Destroy(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, sid)
	return nil
}

type MemoryTokens struct {
	mu   sync.Mutex
	data map[string]memEntry
}

func NewMemoryTokens() *MemoryTokens {
	return &MemoryTokens{data: map[string]memEntry{}}
}

func (t *MemoryTokens) Set(_ context.Context, purpose, token, value string, ttl time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.data[purpose+token] = memEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

func (t *MemoryTokens) Consume(_ context.Context, purpose, token string) (string, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := purpose + token

	e, ok := t.data[key]
	if !ok {
		return "", false, nil
	}

	// Delete-before-inspect keeps redemption single-use even when the
	// token already expired
	delete(t.data, key)

	if e.expired() {
		return "", false, nil
	}

	return e.value, true, nil
}
