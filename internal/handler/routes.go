package handler

import (
	"comanda-pos/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type Handlers struct {
	Menu      *MenuHandler
	Cart      *CartHandler
	Kitchen   *KitchenHandler
	Table     *TableHandler
	Catalog   *CatalogHandler
	Stock     *StockHandler
	Dashboard *DashboardHandler
}

// RegisterRoutes mounts the REST surface under /api/v1
func RegisterRoutes(app *fiber.App, h Handlers, sessions *session.Store) {
	api := app.Group("/api/v1", middleware.TableSession(sessions))

	// Table side (phones) and counter
	api.Get("/menu", h.Menu.GetMenu)
	carts := api.Group("/carts")
	carts.Post("/", h.Cart.Create)
	carts.Get("/:id", h.Cart.Get)
	carts.Patch("/:id", h.Cart.SetCustomer)
	carts.Delete("/:id", h.Cart.Clear)
	carts.Post("/:id/items", h.Cart.AddItem)
	carts.Patch("/:id/items/:index", h.Cart.UpdateQuantity)
	carts.Delete("/:id/items/:index", h.Cart.RemoveItem)
	carts.Post("/:id/submit", middleware.RequireTable(), h.Cart.Submit)
	carts.Post("/:id/load-table", h.Cart.LoadTable)
	carts.Post("/:id/checkout", h.Cart.Checkout)

	// Kitchen, TV and POS screens
	api.Get("/kitchen/orders", h.Kitchen.GetPreparing)
	api.Post("/kitchen/orders/:id/ready", h.Kitchen.MarkReady)
	api.Get("/tv/ready", h.Kitchen.GetReadyBoard)
	api.Get("/pos/tables", h.Kitchen.GetTableTabs)
	api.Delete("/pos/ready/:id", h.Kitchen.ClearReady)
	api.Get("/tables/:number/qrcode", h.Table.GetQRCode)

	// Admin
	admin := api.Group("/admin")
	admin.Get("/categories", h.Catalog.GetCategories)
	admin.Post("/categories", h.Catalog.CreateCategory)
	admin.Put("/categories/:id", h.Catalog.UpdateCategory)
	admin.Delete("/categories/:id", h.Catalog.DeleteCategory)

	admin.Get("/products", h.Catalog.GetProducts)
	admin.Get("/products/:id", h.Catalog.GetProduct)
	admin.Post("/products", h.Catalog.CreateProduct)
	admin.Put("/products/:id", h.Catalog.UpdateProduct)
	admin.Delete("/products/:id", h.Catalog.DeleteProduct)

	admin.Get("/composites", h.Catalog.GetComposites)
	admin.Get("/composites/:id", h.Catalog.GetComposite)
	admin.Post("/composites", h.Catalog.CreateComposite)
	admin.Put("/composites/:id", h.Catalog.UpdateComposite)
	admin.Delete("/composites/:id", h.Catalog.DeleteComposite)

	admin.Get("/portions", h.Catalog.GetPortions)
	admin.Post("/portions", h.Catalog.CreatePortion)
	admin.Put("/portions/:id", h.Catalog.UpdatePortion)
	admin.Delete("/portions/:id", h.Catalog.DeletePortion)

	admin.Get("/stock", h.Stock.GetStock)
	admin.Get("/stock/low", h.Stock.GetLowStock)
	admin.Get("/stock/movements", h.Stock.GetMovements)
	admin.Put("/stock/:id", h.Stock.UpdateStock)

	// Dashboard
	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
	api.Get("/dashboard/sales", h.Dashboard.GetSales)
	api.Get("/dashboard/ranking", h.Dashboard.GetProductRanking)
	api.Get("/dashboard/margins", h.Dashboard.GetCompositeMargins)
}
