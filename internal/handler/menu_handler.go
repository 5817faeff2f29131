package handler

import (
	"comanda-pos/internal/middleware"
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	catalog *service.Catalog
}

func NewMenuHandler(catalog *service.Catalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// GetMenu returns what is on sale plus the table the phone is seated at, if known
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	menu := h.catalog.Menu()
	resp := fiber.Map{"menu": menu}
	if table, ok := middleware.TableFrom(c); ok {
		resp["comanda_number"] = table
	}
	return c.JSON(resp)
}
