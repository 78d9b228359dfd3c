// Package eligibility implements the matching engine that compares an
// applicant's threshold tuple against the card catalog.
package eligibility

import "github.com/cardcheck/cardcheck/internal/catalog"

// Thresholds is the four-dimension minimum tuple an applicant declares.
type Thresholds struct {
	CreditScore         int `json:"minimum_credit_score"`
	CreditLimit         int `json:"minimum_credit_limit"`
	CreditHistoryMonths int `json:"minimum_credit_history_months"`
	Income              int `json:"minimum_income"`
}

// Match returns the names of every card whose requirements the thresholds
// meet or exceed on all four dimensions. Comparisons are exact integer
// comparisons, all predicates conjunctive. Catalog order is preserved and an
// empty result is a valid outcome, not an error.
func Match(t Thresholds, cards []catalog.CardRequirement) []string {
	eligible := make([]string, 0, len(cards))
	for _, card := range cards {
		if t.CreditScore >= card.MinCreditScore &&
			t.CreditLimit >= card.MinPastCreditLimit &&
			t.CreditHistoryMonths >= card.MinCreditHistoryMonths &&
			t.Income >= card.MinIncome {
			eligible = append(eligible, card.Name)
		}
	}
	return eligible
}
