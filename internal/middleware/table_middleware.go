package middleware

import (
	"log"
	"strconv"

	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionTableKey = "table_number"
	LocalsTable     = "table_number"
)

// TableSession remembers the table a phone scanned (?comanda=N) and exposes it
// to handlers through c.Locals
func TableSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("session lookup failed: %v", err)
			return c.Next()
		}

		if raw := c.Query("comanda"); raw != "" {
			if table, err := service.ParseTableNumber(raw); err == nil {
				sess.Set(sessionTableKey, strconv.Itoa(table))
				if err := sess.Save(); err != nil {
					log.Printf("session save failed: %v", err)
				}
				c.Locals(LocalsTable, table)
				return c.Next()
			}
		}

		if stored, ok := sess.Get(sessionTableKey).(string); ok {
			if table, err := strconv.Atoi(stored); err == nil && table > 0 {
				c.Locals(LocalsTable, table)
			}
		}
		return c.Next()
	}
}

// RequireTable rejects table-side requests that never identified their table
func RequireTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := TableFrom(c); !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Table number missing: scan the table QR code or pass ?comanda="})
		}
		return c.Next()
	}
}

func TableFrom(c *fiber.Ctx) (int, bool) {
	table, ok := c.Locals(LocalsTable).(int)
	return table, ok && table > 0
}
