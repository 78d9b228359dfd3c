package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/cardcheck/cardcheck/internal/catalog"
	"github.com/cardcheck/cardcheck/internal/eligibility"
)

func newTestService() *Service {
	cat := catalog.NewMemoryRepository(
		catalog.CardRequirement{Name: "CardA", MinCreditScore: 650, MinPastCreditLimit: 2000, MinCreditHistoryMonths: 12, MinIncome: 30000},
		catalog.CardRequirement{Name: "CardB", MinCreditScore: 750, MinPastCreditLimit: 1000, MinCreditHistoryMonths: 6, MinIncome: 20000},
	)
	return NewService(NewMemoryRepository(), cat)
}

func strongThresholds() eligibility.Thresholds {
	return eligibility.Thresholds{CreditScore: 700, CreditLimit: 5000, CreditHistoryMonths: 24, Income: 50000}
}

func TestCreateReturnsMatches(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cards, err := svc.Create(ctx, 1, strongThresholds())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !reflect.DeepEqual(cards, []string{"CardA"}) {
		t.Fatalf("expected [CardA], got %v", cards)
	}
}

func TestCreateTwiceRejectsSecond(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := strongThresholds()
	if _, err := svc.Create(ctx, 1, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := eligibility.Thresholds{CreditScore: 800, CreditLimit: 9000, CreditHistoryMonths: 60, Income: 90000}
	if _, err := svc.Create(ctx, 1, second); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Stored thresholds must be unchanged from the first call.
	p, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Thresholds != first {
		t.Fatalf("expected first thresholds to survive, got %+v", p.Thresholds)
	}
}

func TestCreateEmptyMatchIsNotAnError(t *testing.T) {
	svc := newTestService()

	weak := eligibility.Thresholds{CreditScore: 300, CreditLimit: 0, CreditHistoryMonths: 0, Income: 0}
	cards, err := svc.Create(context.Background(), 1, weak)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected no qualifying cards, got %v", cards)
	}
}

func TestUpdateWithoutProfileFails(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Update(ctx, 1, strongThresholds()); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}

	// The refused update must not have created anything.
	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected no profile after refused update, got %v", err)
	}
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, strongThresholds()); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := eligibility.Thresholds{CreditScore: 760, CreditLimit: 1500, CreditHistoryMonths: 8, Income: 25000}
	cards, err := svc.Update(ctx, 1, updated)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(cards, []string{"CardB"}) {
		t.Fatalf("expected [CardB] after update, got %v", cards)
	}

	// Read-back shows the new values, never a mix of old and new.
	p, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Thresholds != updated {
		t.Fatalf("expected %+v, got %+v", updated, p.Thresholds)
	}
}

func TestDeleteWithoutProfileFails(t *testing.T) {
	svc := newTestService()

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
}

func TestDeleteThenCreateLeavesNoResidue(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, strongThresholds()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected miss after delete, got %v", err)
	}

	fresh := eligibility.Thresholds{CreditScore: 760, CreditLimit: 1500, CreditHistoryMonths: 8, Income: 25000}
	if _, err := svc.Create(ctx, 1, fresh); err != nil {
		t.Fatalf("re-create: %v", err)
	}

	p, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Thresholds != fresh {
		t.Fatalf("expected only the new thresholds, got %+v", p.Thresholds)
	}
}

func TestCheckUsesStoredProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Check(ctx, 1); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing before create, got %v", err)
	}

	if _, err := svc.Create(ctx, 1, strongThresholds()); err != nil {
		t.Fatalf("create: %v", err)
	}

	cards, err := svc.Check(ctx, 1)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !reflect.DeepEqual(cards, []string{"CardA"}) {
		t.Fatalf("expected [CardA], got %v", cards)
	}
}
