package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/cardcheck/cardcheck/internal/catalog"
	"github.com/cardcheck/cardcheck/internal/config"
	"github.com/cardcheck/cardcheck/internal/identity"
	"github.com/cardcheck/cardcheck/internal/logging"
	"github.com/cardcheck/cardcheck/internal/middleware"
	"github.com/cardcheck/cardcheck/internal/password"
	"github.com/cardcheck/cardcheck/internal/profile"
	"github.com/cardcheck/cardcheck/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories, with in-memory fallbacks for database-less dev runs.
	var identityRepo identity.Repository
	var profileRepo profile.Repository
	var cardCatalog catalog.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		profileRepo = profile.NewPostgresRepository(d.DB)
		cardCatalog = catalog.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		profileRepo = profile.NewMemoryRepository()
		cardCatalog = catalog.NewMemoryRepository(catalog.DefaultCards()...)
	}

	var sessions session.Store
	if d.Cache != nil {
		sessions = session.NewRedisStore(d.Cache, d.Cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore()
	}

	// Services and handlers
	identitySvc := identity.NewService(identityRepo, password.Bcrypt{})
	identityHandler := identity.NewHandler(identitySvc)
	profileSvc := profile.NewService(profileRepo, cardCatalog)
	profileHandler := profile.NewHandler(profileSvc, sessions, d.Logger)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	api.Post("/identity/register", identityHandler.Register)
	RegisterAuthRoutes(api, identitySvc, sessions, d.Logger)
	RegisterCatalogRoutes(api, cardCatalog)

	// Protected routes
	protected := api.Group("", middleware.SessionAuth(sessions))
	RegisterProfileRoutes(protected, profileHandler)
	RegisterSessionRoutes(protected, sessions)

	return nil
}
