package handler

import (
	"comanda-pos/internal/middleware"
	"comanda-pos/internal/model"
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	carts service.CartService
}

func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type createCartRequest struct {
	Kind model.CartKind `json:"kind"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

type loadTableRequest struct {
	Table string `json:"table"`
	QR    string `json:"qr"`
}

func cartView(id string, cart *model.Cart) fiber.Map {
	return fiber.Map{
		"id":                id,
		"kind":              cart.Kind,
		"items":             cart.Items,
		"comanda_number":    cart.ComandaNumber,
		"customer_name":     cart.CustomerName,
		"total_items":       cart.TotalItems(),
		"total_price":       cart.TotalPrice(),
		"needs_preparation": cart.NeedsPreparation(),
	}
}

func (h *CartHandler) Create(c *fiber.Ctx) error {
	var req createCartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
	}
	id, cart := h.carts.Create(req.Kind)
	return c.Status(201).JSON(cartView(id, cart))
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	cart, err := h.carts.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartView(id, cart))
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req service.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id := c.Params("id")
	cart, err := h.carts.AddItem(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(cartView(id, cart))
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	index, ok := paramInt(c, "index")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid line index"})
	}
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id := c.Params("id")
	cart, err := h.carts.UpdateQuantity(id, index, req.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartView(id, cart))
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	index, ok := paramInt(c, "index")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid line index"})
	}
	id := c.Params("id")
	cart, err := h.carts.RemoveItem(id, index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartView(id, cart))
}

// SetCustomer names the counter ticket before checkout
func (h *CartHandler) SetCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id := c.Params("id")
	cart, err := h.carts.SetCustomer(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartView(id, cart))
}

// Clear empties the cart; ?discard=true drops it from the store altogether
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.QueryBool("discard") {
		if err := h.carts.Delete(id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(204)
	}
	cart, err := h.carts.Clear(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartView(id, cart))
}

// Submit sends a table cart to the kitchen. The table comes from ?comanda= or the session.
func (h *CartHandler) Submit(c *fiber.Ctx) error {
	table, ok := middleware.TableFrom(c)
	if !ok {
		return respondError(c, service.ErrInvalidTable)
	}
	order, err := h.carts.Submit(c.UserContext(), c.Params("id"), table)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order sent to the kitchen", "data": order})
}

func (h *CartHandler) LoadTable(c *fiber.Ctx) error {
	var req loadTableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	raw := req.Table
	if raw == "" {
		raw = req.QR
	}
	tab, err := h.carts.LoadTable(c.Params("id"), raw)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tab)
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req service.SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	settlement, err := h.carts.Checkout(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(settlement)
}
