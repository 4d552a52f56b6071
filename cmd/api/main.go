package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-apparel-stock/internal/handler"
	"go-apparel-stock/internal/middleware"
	"go-apparel-stock/internal/repository"
	"go-apparel-stock/internal/schema"
	"go-apparel-stock/internal/service"
	"go-apparel-stock/internal/ws"
	"go-apparel-stock/pkg/config"
	"go-apparel-stock/pkg/database"
	"go-apparel-stock/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env + Config (.env is optional; real env vars win either way)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("apparel-stock", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New("apparel-stock", cfg.App.LogLevel)

	// 2. Open the store and guarantee the schema before first use
	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	if err := schema.NewManager(db, log).Ensure(); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	// 3. WebSocket hub for stock-change pushes
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	optionRepo := repository.NewOptionRepo(db)

	invService := service.NewInventoryService(itemRepo, saleRepo, db, wsHub)
	dashService := service.NewDashboardService(saleRepo)
	exportService := service.NewExportService(saleRepo)

	invHandler := handler.NewInventoryHandler(invService, log)
	optionHandler := handler.NewOptionHandler(optionRepo, log)
	dashHandler := handler.NewDashboardHandler(dashService, log)
	exportHandler := handler.NewExportHandler(exportService, cfg.Export.Dir, log)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Apparel Stock Tracker v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	api := app.Group("/api/v1")

	// Pairing gate: only enforced when a passphrase hash is configured.
	writeGuard := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.Auth.PairingEnabled() {
		authHandler := handler.NewAuthHandler(cfg.Auth)
		api.Post("/auth/pair", authHandler.Pair)
		writeGuard = middleware.RequirePairing([]byte(cfg.Auth.JWTSecret))
	}

	api.Get("/items", invHandler.GetItems)
	api.Post("/items", writeGuard, invHandler.CreateItem)
	api.Put("/items/:id", writeGuard, invHandler.UpdateItem)
	api.Put("/items/:id/quantity", writeGuard, invHandler.SetQuantity)
	api.Delete("/items/:id", writeGuard, invHandler.DeleteItem)
	api.Post("/items/:id/sell", writeGuard, invHandler.SellItem)
	api.Post("/items/:id/restock", writeGuard, invHandler.RestockItem)

	api.Get("/sales", invHandler.GetSales)

	api.Get("/options", optionHandler.GetOptions)
	api.Post("/options", writeGuard, optionHandler.AddOption)

	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	api.Get("/export/snapshot", exportHandler.GetSnapshot)
	api.Get("/export/csv", exportHandler.DownloadCSV)

	// WebSocket route
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

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
