package catalog

// CardRequirement holds the published minimums an applicant profile must
// meet or exceed for a card. Rows are populated out of band and are
// read-only to this service.
type CardRequirement struct {
	Name                   string
	MinCreditScore         int
	MinPastCreditLimit     int
	MinCreditHistoryMonths int
	MinIncome              int
}
