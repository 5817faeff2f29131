package handler

import (
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *StockHandler) GetLowStock(c *fiber.Ctx) error {
	return c.JSON(h.service.LowStock())
}

// UpdateStock applies a manual count; fractional products are counted in units
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	var req service.StockEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock updated", "data": view})
}

// GetMovements lists recent movements, optionally for one product (?product_id=)
func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	movements, err := h.service.Movements(c.UserContext(), c.Query("product_id"), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movements"})
	}
	return c.JSON(movements)
}
