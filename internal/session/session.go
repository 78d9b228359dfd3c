// Package session holds the per-login state for an authenticated caller.
// Every operation receives an explicit token; there is no ambient current
// user, so concurrent callers cannot interfere with one another.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/cardcheck/cardcheck/internal/eligibility"
)

// ErrNotFound indicates no session exists for the token (never issued,
// expired, or logged out).
var ErrNotFound = errors.New("session not found")

// Record is the fixed session state created at login. LastSubmitted echoes
// the most recent thresholds the caller submitted so a return trip can
// pre-populate its form; business logic never reads it.
type Record struct {
	IdentityID    int64                   `json:"identity_id"`
	Email         string                  `json:"email"`
	LoggedIn      bool                    `json:"logged_in"`
	LastSubmitted *eligibility.Thresholds `json:"last_submitted,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

// Store persists sessions keyed by opaque token.
type Store interface {
	Save(ctx context.Context, token string, rec Record) error
	Get(ctx context.Context, token string) (Record, error)
	Delete(ctx context.Context, token string) error
}
