package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cardcheck/cardcheck/internal/session"
)

const (
	sessionTokenHeader = "X-Session-Token"

	// LocalsIdentityID is the Locals key carrying the authenticated identity.
	LocalsIdentityID = "identity_id"
	// LocalsSessionToken is the Locals key carrying the resolved token.
	LocalsSessionToken = "session_token"
)

// SessionAuth resolves the caller's session token into an identity. Tokens
// are accepted from X-Session-Token or an Authorization bearer header.
func SessionAuth(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(sessionTokenHeader)
		if token == "" {
			authz := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				token = strings.TrimSpace(authz[len("Bearer "):])
			}
		}
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing session token")
		}

		rec, err := store.Get(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return fiber.NewError(http.StatusUnauthorized, "invalid or expired session")
			}
			return fiber.NewError(http.StatusInternalServerError, "session store failure")
		}
		if !rec.LoggedIn {
			return fiber.NewError(http.StatusUnauthorized, "session not logged in")
		}

		c.Locals(LocalsIdentityID, rec.IdentityID)
		c.Locals(LocalsSessionToken, token)
		return c.Next()
	}
}
