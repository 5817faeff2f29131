package handler

import (
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type TableHandler struct {
	menuBaseURL string
}

func NewTableHandler(menuBaseURL string) *TableHandler {
	return &TableHandler{menuBaseURL: menuBaseURL}
}

// MenuURL is what the QR code on table n points to
func (h *TableHandler) MenuURL(table int) string {
	u, err := url.Parse(h.menuBaseURL)
	if err != nil {
		return fmt.Sprintf("%s?comanda=%d", h.menuBaseURL, table)
	}
	q := u.Query()
	q.Set("comanda", fmt.Sprint(table))
	u.RawQuery = q.Encode()
	return u.String()
}

// GetQRCode renders the table's menu link as a PNG
func (h *TableHandler) GetQRCode(c *fiber.Ctx) error {
	table, ok := paramInt(c, "number")
	if !ok || table <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table number"})
	}
	size := c.QueryInt("size", 256)
	if size < 64 || size > 1024 {
		size = 256
	}

	png, err := qrcode.Encode(h.MenuURL(table), qrcode.Medium, size)
	if err != nil {
		log.Printf("qrcode for table %d failed: %v", table, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render QR code"})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
