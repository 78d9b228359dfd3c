package catalog

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	cards []CardRequirement
}

// NewMemoryRepository builds an in-memory catalog seeded with the provided
// cards, for tests and database-less development runs.
func NewMemoryRepository(cards ...CardRequirement) Repository {
	return &memoryRepository{cards: cards}
}

// DefaultCards mirrors the seed catalog shipped in the migrations.
func DefaultCards() []CardRequirement {
	return []CardRequirement{
		{Name: "Everyday Cashback", MinCreditScore: 600, MinPastCreditLimit: 1000, MinCreditHistoryMonths: 6, MinIncome: 20000},
		{Name: "Travel Rewards Plus", MinCreditScore: 680, MinPastCreditLimit: 3000, MinCreditHistoryMonths: 18, MinIncome: 45000},
		{Name: "Platinum Select", MinCreditScore: 740, MinPastCreditLimit: 5000, MinCreditHistoryMonths: 36, MinIncome: 75000},
		{Name: "Student Starter", MinCreditScore: 550, MinPastCreditLimit: 500, MinCreditHistoryMonths: 0, MinIncome: 10000},
	}
}

func (r *memoryRepository) List(_ context.Context) ([]CardRequirement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CardRequirement, len(r.cards))
	copy(out, r.cards)
	return out, nil
}
