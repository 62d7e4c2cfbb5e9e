package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/config"
	"github.com/praveenkm/medistock-api/internal/infrastructure/database"
	"github.com/praveenkm/medistock-api/internal/infrastructure/repository"
	"github.com/praveenkm/medistock-api/internal/presentation/http/handler"
	"github.com/praveenkm/medistock-api/internal/presentation/http/routes"
	"github.com/praveenkm/medistock-api/pkg/ailookup"
	"github.com/praveenkm/medistock-api/pkg/printer"
	"github.com/praveenkm/medistock-api/pkg/utils"
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// AI-assisted medicine lookup (disabled when no API key is configured)
	lookupClient := ailookup.New(cfg.Lookup.APIKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	medicineService := service.NewMedicineService(medicineRepo, categoryRepo, lookupClient)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, medicineRepo, transactionRepo)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, supplierRepo, medicineRepo, transactionRepo)
	transactionService := service.NewTransactionService(transactionRepo, medicineRepo)
	reportService := service.NewReportService(invoiceRepo)
	dashboardService := service.NewDashboardService(medicineRepo, supplierRepo, invoiceRepo, purchaseOrderRepo, transactionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo)

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
	printerService := service.NewPrinterService(thermalPrinter, invoiceRepo, settingsRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Medicine:      handler.NewMedicineHandler(medicineService),
		Category:      handler.NewCategoryHandler(categoryService),
		Supplier:      handler.NewSupplierHandler(supplierService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Transaction:   handler.NewTransactionHandler(transactionService),
		Report:        handler.NewReportHandler(reportService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Settings:      handler.NewSettingsHandler(settingsService),
		User:          handler.NewUserHandler(userService),
		Printer:       handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
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
