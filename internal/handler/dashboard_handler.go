package handler

import (
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.ReportService
}

func NewDashboardHandler(s service.ReportService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns today's overview
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetSales lists sales in a period
// Query params: from, to (YYYY-MM-DD, default last 7 days), type (pdv|comanda)
func (h *DashboardHandler) GetSales(c *fiber.Ctx) error {
	now := time.Now()
	start := now.AddDate(0, 0, -7)
	end := now

	if from := c.Query("from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, now.Location())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date, use YYYY-MM-DD"})
		}
		start = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, now.Location())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid to date, use YYYY-MM-DD"})
		}
		end = t.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"error": "from must not be after to"})
	}

	saleType := model.SaleType(c.Query("type"))
	if saleType != "" && saleType != model.SalePDV && saleType != model.SaleComanda {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale type"})
	}

	sales, err := h.service.GetSales(c.UserContext(), start, end, saleType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales"})
	}
	summary, err := h.service.GetSummary(c.UserContext(), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales summary"})
	}

	return c.JSON(fiber.Map{
		"from":    start,
		"to":      end,
		"summary": summary,
		"data":    sales,
	})
}

// GetProductRanking returns best sellers
// Query params: days (default 7), limit (default 10)
func (h *DashboardHandler) GetProductRanking(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 {
		days = 7
	}
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	ranking, err := h.service.GetProductRanking(c.UserContext(), days, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch product ranking"})
	}
	return c.JSON(fiber.Map{"period": days, "data": ranking})
}

func (h *DashboardHandler) GetCompositeMargins(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCompositeMargins())
}
