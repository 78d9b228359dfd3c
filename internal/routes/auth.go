package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cardcheck/cardcheck/internal/identity"
	"github.com/cardcheck/cardcheck/internal/middleware"
	"github.com/cardcheck/cardcheck/internal/session"
)

// RegisterAuthRoutes wires login and logout. Login mints an opaque session
// token; every later call carries it explicitly, so there is no ambient
// current-user state.
func RegisterAuthRoutes(r fiber.Router, ids *identity.Service, sessions session.Store, logger *slog.Logger) {
	group := r.Group("/auth")

	group.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		ident, err := ids.Authenticate(c.UserContext(), req.Email, req.Password)
		switch {
		case errors.Is(err, identity.ErrNotFound), errors.Is(err, identity.ErrInvalidCredential):
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		case err != nil:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		token := uuid.NewString()
		rec := session.Record{
			IdentityID: ident.ID,
			Email:      ident.Email,
			LoggedIn:   true,
			CreatedAt:  time.Now().UTC(),
		}
		if err := sessions.Save(c.UserContext(), token, rec); err != nil {
			return fiber.NewError(http.StatusInternalServerError, "session store failure")
		}

		if logger != nil {
			logger.Info("auth.login completed",
				slog.Int64("identity_id", ident.ID),
				slog.String("email", ident.Email),
			)
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"session_token": token,
			"identity_id":   ident.ID,
			"email":         ident.Email,
		})
	})

	// Logout requires an authenticated session; the middleware resolves the
	// token before the handler deletes it.
	group.Post("/logout", middleware.SessionAuth(sessions), func(c *fiber.Ctx) error {
		token, _ := c.Locals(middleware.LocalsSessionToken).(string)
		if err := sessions.Delete(c.UserContext(), token); err != nil {
			return fiber.NewError(http.StatusInternalServerError, "session store failure")
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
	})
}

// RegisterSessionRoutes exposes the caller's own session record, including
// the echoed last-submitted thresholds used to pre-populate forms.
func RegisterSessionRoutes(r fiber.Router, sessions session.Store) {
	r.Get("/session", func(c *fiber.Ctx) error {
		token, _ := c.Locals(middleware.LocalsSessionToken).(string)
		rec, err := sessions.Get(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid or expired session")
		}
		return c.Status(http.StatusOK).JSON(rec)
	})
}
