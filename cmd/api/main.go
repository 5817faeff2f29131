package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"comanda-pos/internal/handler"
	"comanda-pos/internal/repository"
	"comanda-pos/internal/service"
	"comanda-pos/internal/ws"
	"comanda-pos/pkg/config"
	"comanda-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	// 2. Setup Database (sales and stock movements)
	db := database.ConnectDB(cfg)

	// 3. In-memory ledgers and catalog
	stock := service.NewStockLedger()
	catalog := service.NewCatalog(stock, cfg.LowStockDefault)
	if cfg.SeedDemo {
		catalog.SeedDefaults()
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	broadcaster := ws.NewBroadcaster(wsHub)
	orders := service.NewOrderLedger(broadcaster)
	wsHub.OnConnect = func() []byte {
		return ws.Snapshot(orders.PreparingCount())
	}
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	saleRepo := repository.NewSaleRepo(db)
	movementRepo := repository.NewMovementRepo(db)

	checkout := service.NewCheckoutService(stock, orders, saleRepo, movementRepo, broadcaster)
	carts := service.NewCartService(service.NewCartStore(), catalog, checkout)
	stockService := service.NewStockService(stock, catalog, movementRepo, broadcaster)
	reportService := service.NewReportService(saleRepo, stock, orders, catalog)

	handlers := handler.Handlers{
		Menu:      handler.NewMenuHandler(catalog),
		Cart:      handler.NewCartHandler(carts),
		Kitchen:   handler.NewKitchenHandler(orders),
		Table:     handler.NewTableHandler(cfg.MenuBaseURL),
		Catalog:   handler.NewCatalogHandler(catalog),
		Stock:     handler.NewStockHandler(stockService),
		Dashboard: handler.NewDashboardHandler(reportService),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Comanda POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handler.RegisterRoutes(app, handlers, session.New())

	// WebSocket Route (kitchen, POS and TV screens)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited")
}
