package profile

import (
	"context"

	"github.com/cardcheck/cardcheck/internal/catalog"
	"github.com/cardcheck/cardcheck/internal/eligibility"
)

// Service is the profile lifecycle controller. Each verb has a single
// precondition: create refuses when a profile exists, update and delete
// refuse when none does. Create and update re-run the matching engine and
// return the qualifying card names.
type Service struct {
	repo    Repository
	catalog catalog.Repository
}

// NewService builds a profile service instance.
func NewService(repo Repository, cat catalog.Repository) *Service {
	return &Service{repo: repo, catalog: cat}
}

// Create persists a new profile for the identity and returns the cards it
// qualifies for. Returns ErrAlreadyExists without persisting or matching
// when the identity already holds a profile.
func (s *Service) Create(ctx context.Context, identityID int64, t eligibility.Thresholds) ([]string, error) {
	if err := s.repo.Create(ctx, Profile{IdentityID: identityID, Thresholds: t}); err != nil {
		return nil, err
	}
	return s.match(ctx, t)
}

// Update overwrites all four thresholds and returns the possibly changed
// match result. Returns ErrProfileMissing without writing when the identity
// holds no profile; it must not silently create one.
func (s *Service) Update(ctx context.Context, identityID int64, t eligibility.Thresholds) ([]string, error) {
	if err := s.repo.Update(ctx, Profile{IdentityID: identityID, Thresholds: t}); err != nil {
		return nil, err
	}
	return s.match(ctx, t)
}

// Delete removes the profile. Returns ErrProfileMissing when none exists.
// A deleted identity may create a fresh profile afterwards.
func (s *Service) Delete(ctx context.Context, identityID int64) error {
	return s.repo.Delete(ctx, identityID)
}

// Get returns the stored thresholds. A miss is an expected outcome reported
// as ErrProfileMissing.
func (s *Service) Get(ctx context.Context, identityID int64) (Profile, error) {
	return s.repo.FindByIdentity(ctx, identityID)
}

// Check re-evaluates eligibility for the stored profile without mutating it.
func (s *Service) Check(ctx context.Context, identityID int64) ([]string, error) {
	p, err := s.repo.FindByIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}
	return s.match(ctx, p.Thresholds)
}

func (s *Service) match(ctx context.Context, t eligibility.Thresholds) ([]string, error) {
	cards, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return eligibility.Match(t, cards), nil
}
