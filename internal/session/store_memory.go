package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Record
}

// NewMemoryStore builds an in-memory session store for tests and
// database-less development runs. Entries never expire.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Record)}
}

func (s *memoryStore) Save(_ context.Context, token string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = rec
	return nil
}

func (s *memoryStore) Get(_ context.Context, token string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[token]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
