package handler

import (
	"go-apparel-stock/internal/model"
	"go-apparel-stock/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	service service.InventoryService
	log     zerolog.Logger
}

func NewInventoryHandler(s service.InventoryService, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{service: s, log: log}
}

func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(items)
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateItem(&item)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": created})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateItem(id, &item)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity is the direct stock correction: it bypasses the sell/restock
// flows and never touches the ledger.
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Quantity < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Quantity must not be negative"})
	}

	if err := h.service.SetQuantity(id, req.Quantity); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Quantity updated"})
}

type sellRequest struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (h *InventoryHandler) SellItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req sellRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	// The quick-sell flow sells one unit at a time.
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sale, err := h.service.Sell(id, req.Quantity, req.Price)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

func (h *InventoryHandler) RestockItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.Restock(id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Item restocked", "data": item})
}

func (h *InventoryHandler) GetSales(c *fiber.Ctx) error {
	var itemID *uuid.UUID
	if raw := c.Query("item_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
		}
		itemID = &id
	}

	sales, err := h.service.History(itemID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(sales)
}
