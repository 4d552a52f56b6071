package handler

import (
	"go-apparel-stock/internal/model"
	"go-apparel-stock/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type OptionHandler struct {
	repo repository.OptionRepository
	log  zerolog.Logger
}

func NewOptionHandler(repo repository.OptionRepository, log zerolog.Logger) *OptionHandler {
	return &OptionHandler{repo: repo, log: log}
}

func parseOptionType(raw string) (model.OptionType, bool) {
	switch model.OptionType(raw) {
	case model.OptionCategory, model.OptionAge, model.OptionSubCategory:
		return model.OptionType(raw), true
	}
	return "", false
}

func (h *OptionHandler) GetOptions(c *fiber.Ctx) error {
	typ, ok := parseOptionType(c.Query("type"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown option type"})
	}

	values, err := h.repo.List(typ, c.Query("parent"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(values)
}

type addOptionRequest struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Parent string `json:"parent"`
}

func (h *OptionHandler) AddOption(c *fiber.Ctx) error {
	var req addOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	typ, ok := parseOptionType(req.Type)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown option type"})
	}

	if err := h.repo.Add(typ, req.Value, req.Parent); err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Option saved"})
}
