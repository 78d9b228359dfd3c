package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byMail map[string]Identity
}

// NewMemoryRepository builds an in-memory identity store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{byMail: make(map[string]Identity)}
}

func (r *memoryRepository) Create(_ context.Context, input RegisterInput, passwordDigest string) (Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byMail[input.Email]; exists {
		return Identity{}, ErrDuplicateEmail
	}
	r.nextID++
	ident := Identity{
		ID:             r.nextID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordDigest: passwordDigest,
		PhoneNumber:    input.Phone,
		Address:        input.Address,
		CreatedAt:      time.Now().UTC(),
	}
	r.byMail[input.Email] = ident
	return ident, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ident, ok := r.byMail[email]
	if !ok {
		return Identity{}, ErrNotFound
	}
	return ident, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ident := range r.byMail {
		if ident.ID == id {
			return ident, nil
		}
	}
	return Identity{}, ErrNotFound
}
