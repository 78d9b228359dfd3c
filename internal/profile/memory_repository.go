package profile

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]Profile
}

// NewMemoryRepository builds an in-memory profile store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{profiles: make(map[int64]Profile)}
}

func (r *memoryRepository) Create(_ context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.IdentityID]; exists {
		return ErrAlreadyExists
	}
	r.profiles[p.IdentityID] = p
	return nil
}

func (r *memoryRepository) Update(_ context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.IdentityID]; !exists {
		return ErrProfileMissing
	}
	r.profiles[p.IdentityID] = p
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, identityID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[identityID]; !exists {
		return ErrProfileMissing
	}
	delete(r.profiles, identityID)
	return nil
}

func (r *memoryRepository) FindByIdentity(_ context.Context, identityID int64) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[identityID]
	if !ok {
		return Profile{}, ErrProfileMissing
	}
	return p, nil
}
