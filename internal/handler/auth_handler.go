package handler

import (
	"go-apparel-stock/pkg/config"
	"go-apparel-stock/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	cfg config.AuthConfig
}

func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type pairRequest struct {
	Device     string `json:"device"`
	Passphrase string `json:"passphrase"`
}

// Pair exchanges the store passphrase for a device token. There is no user
// model: any device that knows the passphrase may mutate stock.
func (h *AuthHandler) Pair(c *fiber.Ctx) error {
	var req pairRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Device == "" {
		req.Device = "unnamed-device"
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.PassphraseHash), []byte(req.Passphrase)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Incorrect passphrase"})
	}

	token, err := jwt.GenerateToken(req.Device, []byte(h.cfg.JWTSecret))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to issue token"})
	}
	return c.JSON(fiber.Map{"token": token})
}
