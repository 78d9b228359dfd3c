package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cardcheck/cardcheck/internal/session"
)

func setupSessionApp(t *testing.T) (*fiber.App, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()

	app := fiber.New()
	app.Get("/protected", SessionAuth(store), func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalsIdentityID).(int64)
		return c.JSON(fiber.Map{"identity_id": id})
	})
	return app, store
}

func TestSessionAuthMissingToken(t *testing.T) {
	app, _ := setupSessionApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionAuthUnknownToken(t *testing.T) {
	app, _ := setupSessionApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(sessionTokenHeader, "bogus")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionAuthAcceptsHeaderAndBearer(t *testing.T) {
	app, store := setupSessionApp(t)

	if err := store.Save(context.Background(), "tok-1", session.Record{IdentityID: 7, LoggedIn: true}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(sessionTokenHeader, "tok-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 via header, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok-1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 via bearer, got %d", resp.StatusCode)
	}
}
