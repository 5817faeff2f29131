package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func newTableApp() *fiber.App {
	app := fiber.New()
	app.Use(TableSession(session.New()))
	app.Get("/whoami", RequireTable(), func(c *fiber.Ctx) error {
		table, _ := TableFrom(c)
		return c.JSON(fiber.Map{"table": table})
	})
	return app
}

func TestTableSession(t *testing.T) {
	app := newTableApp()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantTable  int
	}{
		{"query number", "/whoami?comanda=7", 200, 7},
		{"qr payload", "/whoami?comanda=comanda%3D9", 200, 9},
		{"missing", "/whoami", 400, 0},
		{"invalid", "/whoami?comanda=zero", 400, 0},
		{"not positive", "/whoami?comanda=0", 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if tt.wantStatus != 200 {
				return
			}
			body, _ := io.ReadAll(resp.Body)
			var got struct{ Table int }
			json.Unmarshal(body, &got)
			if got.Table != tt.wantTable {
				t.Errorf("expected table %d, got %d", tt.wantTable, got.Table)
			}
		})
	}
}

func TestTableSessionRemembersTable(t *testing.T) {
	app := newTableApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami?comanda=12", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("table should come from the session, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	var got struct{ Table int }
	json.Unmarshal(body, &got)
	if got.Table != 12 {
		t.Errorf("expected table 12, got %d", got.Table)
	}
}
