package handler

import (
	"errors"
	"log"
	"strconv"

	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto status codes with the usual {"error": ...} body
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *service.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		return c.Status(409).JSON(fiber.Map{"error": err.Error(), "missing": insufficient.Missing})
	case service.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case service.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("request %s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func paramInt(c *fiber.Ctx, name string) (int, bool) {
	v, err := strconv.Atoi(c.Params(name))
	return v, err == nil
}
