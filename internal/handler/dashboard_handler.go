package handler

import (
	"go-apparel-stock/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type DashboardHandler struct {
	service service.DashboardService
	log     zerolog.Logger
}

func NewDashboardHandler(s service.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(stats)
}
