package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired expects the authenticating gateway to inject the caller's
// identity in the X-User-ID header. Requests without it are rejected.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
