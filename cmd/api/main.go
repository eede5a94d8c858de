package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/config"
	"github.com/omsai/pos-backend/internal/infrastructure/database"
	"github.com/omsai/pos-backend/internal/infrastructure/repository"
	"github.com/omsai/pos-backend/internal/presentation/http/handler"
	"github.com/omsai/pos-backend/internal/presentation/http/routes"
	"github.com/omsai/pos-backend/pkg/printer"
	"github.com/omsai/pos-backend/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bill number counter, restaurant profile and admin user
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	billRepo := repository.NewBillRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	menuService := service.NewMenuService(menuRepo)
	billService := service.NewBillService(billRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	receiptService := service.NewReceiptService(
		billRepo,
		settingsRepo,
		thermalPrinter,
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Menu:     handler.NewMenuHandler(menuService),
		Bill:     handler.NewBillHandler(billService, receiptService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
