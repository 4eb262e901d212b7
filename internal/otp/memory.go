package otp

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore keeps pending codes in a process-local map. Expired entries
// are removed lazily, on the next Verify for that phone.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Issue(_ context.Context, phone string) (string, error) {
	code := generateCode()

	s.mu.Lock()
	s.entries[phone] = entry{code: code, expiresAt: s.now().Add(CodeTTL)}
	s.mu.Unlock()

	return code, nil
}

func (s *MemoryStore) Verify(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[phone]
	if !ok {
		return ErrNotFound
	}

	if s.now().After(e.expiresAt) {
		delete(s.entries, phone)
		return ErrExpired
	}

	if e.code != code {
		return ErrMismatch
	}

	delete(s.entries, phone)
	return nil
}

var _ Store = (*MemoryStore)(nil)
