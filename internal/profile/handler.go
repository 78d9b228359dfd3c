package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cardcheck/cardcheck/internal/eligibility"
	"github.com/cardcheck/cardcheck/internal/middleware"
	"github.com/cardcheck/cardcheck/internal/session"
)

// Handler exposes the profile lifecycle and eligibility endpoints. All
// routes require an authenticated session.
type Handler struct {
	service  *Service
	sessions session.Store
	logger   *slog.Logger
}

// NewHandler builds a profile HTTP handler.
func NewHandler(service *Service, sessions session.Store, logger *slog.Logger) *Handler {
	return &Handler{service: service, sessions: sessions, logger: logger}
}

type thresholdsRequest struct {
	CreditScore         int `json:"minimum_credit_score"`
	CreditLimit         int `json:"minimum_credit_limit"`
	CreditHistoryMonths int `json:"minimum_credit_history_months"`
	Income              int `json:"minimum_income"`
}

func (r thresholdsRequest) thresholds() eligibility.Thresholds {
	return eligibility.Thresholds{
		CreditScore:         r.CreditScore,
		CreditLimit:         r.CreditLimit,
		CreditHistoryMonths: r.CreditHistoryMonths,
		Income:              r.Income,
	}
}

type matchResponse struct {
	EligibleCards []string `json:"eligible_cards"`
}

// Create inserts the caller's profile and returns the cards it qualifies for.
func (h *Handler) Create(c *fiber.Ctx) error {
	identityID, ok := c.Locals(middleware.LocalsIdentityID).(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	var req thresholdsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	cards, err := h.service.Create(c.UserContext(), identityID, req.thresholds())
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return fiber.NewError(http.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	h.echoThresholds(c, req.thresholds())

	return c.Status(http.StatusCreated).JSON(matchResponse{EligibleCards: cards})
}

// Update overwrites the caller's thresholds and returns the new match result.
func (h *Handler) Update(c *fiber.Ctx) error {
	identityID, ok := c.Locals(middleware.LocalsIdentityID).(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	var req thresholdsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	cards, err := h.service.Update(c.UserContext(), identityID, req.thresholds())
	switch {
	case errors.Is(err, ErrProfileMissing):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	h.echoThresholds(c, req.thresholds())

	return c.Status(http.StatusOK).JSON(matchResponse{EligibleCards: cards})
}

// Delete removes the caller's profile.
func (h *Handler) Delete(c *fiber.Ctx) error {
	identityID, ok := c.Locals(middleware.LocalsIdentityID).(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	err := h.service.Delete(c.UserContext(), identityID)
	switch {
	case errors.Is(err, ErrProfileMissing):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "deleted"})
}

// Get returns the caller's stored thresholds.
func (h *Handler) Get(c *fiber.Ctx) error {
	identityID, ok := c.Locals(middleware.LocalsIdentityID).(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := h.service.Get(c.UserContext(), identityID)
	switch {
	case errors.Is(err, ErrProfileMissing):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(p.Thresholds)
}

// Check re-evaluates eligibility for the caller's stored profile.
func (h *Handler) Check(c *fiber.Ctx) error {
	identityID, ok := c.Locals(middleware.LocalsIdentityID).(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	cards, err := h.service.Check(c.UserContext(), identityID)
	switch {
	case errors.Is(err, ErrProfileMissing):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(matchResponse{EligibleCards: cards})
}

// echoThresholds writes the submitted tuple back onto the session record so
// a return trip can pre-populate its form. Best effort; the profile write
// has already committed.
func (h *Handler) echoThresholds(c *fiber.Ctx, t eligibility.Thresholds) {
	token, _ := c.Locals(middleware.LocalsSessionToken).(string)
	if token == "" || h.sessions == nil {
		return
	}
	rec, err := h.sessions.Get(c.UserContext(), token)
	if err != nil {
		return
	}
	rec.LastSubmitted = &t
	if err := h.sessions.Save(c.UserContext(), token, rec); err != nil && h.logger != nil {
		h.logger.Warn("failed to echo thresholds to session", "error", err)
	}
}
