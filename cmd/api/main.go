package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-dealership-api/internal/handler"
	"go-dealership-api/internal/middleware"
	"go-dealership-api/internal/model"
	"go-dealership-api/internal/repository"
	"go-dealership-api/internal/service"
	"go-dealership-api/internal/ws"
	"go-dealership-api/pkg/config"
	"go-dealership-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Setup database
	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Store{}, &model.User{}, &model.Vehicle{}, &model.TransferEvent{})

	// 3. Seed default admin user
	seedAdmin(db, cfg)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	transferRepo := repository.NewTransferRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	storeService := service.NewStoreService(storeRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, storeRepo, transferRepo, wsHub)
	reportService := service.NewReportService(vehicleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	storeHandler := handler.NewStoreHandler(storeService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	reportHandler := handler.NewReportHandler(reportService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Dealership Inventory API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)

	// ============ PROTECTED ROUTES ============
	// The caller identity arrives as the X-User-ID header and is trusted
	// as presented.
	protected := api.Group("", middleware.RequireIdentity(authService))

	// Vehicles (role scoping happens inside the service layer)
	protected.Get("/vehicles", vehicleHandler.GetVehicles)
	protected.Get("/vehicles/export", vehicleHandler.ExportVehicles)
	protected.Post("/vehicles", vehicleHandler.CreateVehicle)
	protected.Put("/vehicles/:id", vehicleHandler.UpdateVehicle)
	protected.Post("/vehicles/:id/sell", vehicleHandler.SellVehicle)
	protected.Delete("/vehicles/:id", vehicleHandler.DeleteVehicle)

	// Transfer audit trail
	protected.Get("/transfers", vehicleHandler.GetTransfers)

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// Stores
	protected.Get("/stores", storeHandler.GetStores)
	protected.Post("/stores", storeHandler.CreateStore)
	protected.Delete("/stores/:id", storeHandler.DeleteStore)

	// Reports
	protected.Get("/reports/stock", reportHandler.GetStockSummary)
	protected.Get("/reports/sales", reportHandler.GetSalesReport)

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

	// 8. Graceful shutdown
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

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("✅ Admin user created: %s (admin)", cfg.AdminEmail)
	}
}
