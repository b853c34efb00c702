package handlers

import (
	"contact-hub/app"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns dashboard counters and recent activity
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Stats.Overview()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to compute stats", err)
		}

		return success(c, stats)
	}
}
