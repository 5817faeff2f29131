package handler

import (
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// KitchenHandler serves the kitchen queue, the TV pickup board and the POS table overview
type KitchenHandler struct {
	orders *service.OrderLedger
}

func NewKitchenHandler(orders *service.OrderLedger) *KitchenHandler {
	return &KitchenHandler{orders: orders}
}

func (h *KitchenHandler) GetPreparing(c *fiber.Ctx) error {
	orders := h.orders.Preparing()
	return c.JSON(fiber.Map{"count": len(orders), "data": orders})
}

// MarkReady is idempotent: an order already ready is returned as is
func (h *KitchenHandler) MarkReady(c *fiber.Ctx) error {
	order, ok := h.orders.MarkReady(c.Params("id"))
	if !ok {
		return respondError(c, service.ErrOrderNotFound)
	}
	return c.JSON(fiber.Map{"message": "Order ready", "data": order})
}

func (h *KitchenHandler) GetReadyBoard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.orders.ReadyTableOrders()})
}

func (h *KitchenHandler) GetTableTabs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.orders.TableTabs()})
}

func (h *KitchenHandler) ClearReady(c *fiber.Ctx) error {
	if !h.orders.ClearReadyOrder(c.Params("id")) {
		return respondError(c, service.ErrOrderNotFound)
	}
	return c.SendStatus(204)
}
