package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praveenkm/medistock-api/internal/config"
	domainRepo "github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/internal/presentation/http/handler"
	"github.com/praveenkm/medistock-api/internal/presentation/http/middleware"
	"github.com/praveenkm/medistock-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Medicine      *handler.MedicineHandler
	Category      *handler.CategoryHandler
	Supplier      *handler.SupplierHandler
	Invoice       *handler.InvoiceHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Transaction   *handler.TransactionHandler
	Report        *handler.ReportHandler
	Dashboard     *handler.DashboardHandler
	Settings      *handler.SettingsHandler
	User          *handler.UserHandler
	Printer       *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Medicines
	registerMedicineRoutes(protected, h)

	// Categories
	registerCategoryRoutes(protected, h)

	// Suppliers
	registerSupplierRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h, deps)

	// Purchase orders
	registerPurchaseOrderRoutes(protected, h)

	// Transactions
	registerTransactionRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Settings
	registerSettingsRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerMedicineRoutes(protected *gin.RouterGroup, h *Handlers) {
	medicines := protected.Group("/medicines")
	{
		medicines.GET("", h.Medicine.List)
		medicines.POST("", h.Medicine.Create)
		medicines.POST("/lookup", h.Medicine.Lookup)
		medicines.GET("/low-stock", h.Medicine.LowStock)
		medicines.GET("/expiring", h.Medicine.Expiring)
		medicines.GET("/:id", h.Medicine.Get)
		medicines.PUT("/:id", h.Medicine.Update)
		medicines.DELETE("/:id", middleware.RequireRole("admin"), h.Medicine.Delete)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", middleware.RequireRole("admin"), h.Category.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", middleware.RequireRole("admin"), h.Supplier.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/number/:number", h.Invoice.GetByNumber)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.DELETE("/:id", middleware.RequireRole("admin"), h.Invoice.Delete)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/purchase-orders")
	{
		orders.GET("", h.PurchaseOrder.List)
		orders.POST("", h.PurchaseOrder.Create)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.POST("/:id/receive", h.PurchaseOrder.Receive)
		orders.POST("/:id/cancel", h.PurchaseOrder.Cancel)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.PurchaseOrder.Delete)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/sales/export", h.Report.ExportSales)
		reports.GET("/daily", h.Report.Daily)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequireRole("admin"), h.Settings.Update)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/invoices/:id", h.Printer.PrintInvoice)
	}
}
