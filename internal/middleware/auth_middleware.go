package middleware

import (
	"strings"

	"go-apparel-stock/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequirePairing validates the device token issued by /auth/pair and records
// the device name in the request context.
func RequirePairing(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("device", claims.Device)
		return c.Next()
	}
}
