package eligibility

import (
	"reflect"
	"testing"

	"github.com/cardcheck/cardcheck/internal/catalog"
)

func TestMatchConjunctivePredicates(t *testing.T) {
	cards := []catalog.CardRequirement{
		{Name: "CardA", MinCreditScore: 650, MinPastCreditLimit: 2000, MinCreditHistoryMonths: 12, MinIncome: 30000},
		{Name: "CardB", MinCreditScore: 750, MinPastCreditLimit: 1000, MinCreditHistoryMonths: 6, MinIncome: 20000},
	}
	profile := Thresholds{CreditScore: 700, CreditLimit: 5000, CreditHistoryMonths: 24, Income: 50000}

	got := Match(profile, cards)
	want := []string{"CardA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMatchFailsWhenAnyDimensionShort(t *testing.T) {
	card := catalog.CardRequirement{Name: "X", MinCreditScore: 600, MinPastCreditLimit: 1000, MinCreditHistoryMonths: 12, MinIncome: 30000}
	base := Thresholds{CreditScore: 600, CreditLimit: 1000, CreditHistoryMonths: 12, Income: 30000}

	cases := []struct {
		name   string
		mutate func(*Thresholds)
	}{
		{"score below", func(p *Thresholds) { p.CreditScore-- }},
		{"limit below", func(p *Thresholds) { p.CreditLimit-- }},
		{"history below", func(p *Thresholds) { p.CreditHistoryMonths-- }},
		{"income below", func(p *Thresholds) { p.Income-- }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			if got := Match(p, []catalog.CardRequirement{card}); len(got) != 0 {
				t.Fatalf("expected no match, got %v", got)
			}
		})
	}
}

func TestMatchEqualityMeetsRequirement(t *testing.T) {
	card := catalog.CardRequirement{Name: "Exact", MinCreditScore: 600, MinPastCreditLimit: 1000, MinCreditHistoryMonths: 12, MinIncome: 30000}
	profile := Thresholds{CreditScore: 600, CreditLimit: 1000, CreditHistoryMonths: 12, Income: 30000}

	if got := Match(profile, []catalog.CardRequirement{card}); len(got) != 1 {
		t.Fatalf("expected exact-boundary match, got %v", got)
	}
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	cards := []catalog.CardRequirement{
		{Name: "Third", MinCreditScore: 1},
		{Name: "First", MinCreditScore: 1},
		{Name: "Second", MinCreditScore: 1},
	}
	profile := Thresholds{CreditScore: 100, CreditLimit: 100, CreditHistoryMonths: 100, Income: 100}

	got := Match(profile, cards)
	want := []string{"Third", "First", "Second"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected catalog order %v, got %v", want, got)
	}
}

func TestMatchEmptyCatalog(t *testing.T) {
	got := Match(Thresholds{CreditScore: 800}, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
