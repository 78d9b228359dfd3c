package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardcheck/cardcheck/internal/profile"
)

// RegisterProfileRoutes wires the profile lifecycle and eligibility
// endpoints. The router passed in must already enforce session auth.
func RegisterProfileRoutes(r fiber.Router, h *profile.Handler) {
	r.Get("/profile", h.Get)
	r.Post("/profile", h.Create)
	r.Put("/profile", h.Update)
	r.Delete("/profile", h.Delete)
	r.Get("/eligibility", h.Check)
}
