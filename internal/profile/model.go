package profile

import "github.com/cardcheck/cardcheck/internal/eligibility"

// Profile is the single threshold tuple an identity may hold. Exclusively
// owned by the identity it references; at most one row exists per identity.
type Profile struct {
	IdentityID int64
	Thresholds eligibility.Thresholds
}
