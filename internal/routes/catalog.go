package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cardcheck/cardcheck/internal/catalog"
)

// RegisterCatalogRoutes exposes the read-only card catalog.
func RegisterCatalogRoutes(r fiber.Router, repo catalog.Repository) {
	r.Get("/cards", func(c *fiber.Ctx) error {
		cards, err := repo.List(c.UserContext())
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		out := make([]fiber.Map, 0, len(cards))
		for _, card := range cards {
			out = append(out, fiber.Map{
				"card_name":                     card.Name,
				"minimum_credit_score":          card.MinCreditScore,
				"minimum_past_credit_limit":     card.MinPastCreditLimit,
				"minimum_credit_history_months": card.MinCreditHistoryMonths,
				"minimum_income":                card.MinIncome,
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"cards": out})
	})
}
