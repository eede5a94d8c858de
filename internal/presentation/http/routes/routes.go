package routes

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/internal/config"
	domainRepo "github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/internal/presentation/http/handler"
	"github.com/omsai/pos-backend/internal/presentation/http/middleware"
	"github.com/omsai/pos-backend/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Bill     *handler.BillHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
//
// The root-level routes are the contract the counter frontend was built
// against and must keep their exact paths and response shapes. The /api/v1
// group carries the newer admin endpoints behind JWT auth.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	registerLegacyRoutes(router, h, deps)

	// API v1 routes (admin, authentication required)
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTManager))
	registerProtectedRoutes(protected, h)

	if deps.Cfg.App.StaticDir != "" {
		registerStaticRoutes(router, deps.Cfg.App.StaticDir)
	}

	return router
}

func registerLegacyRoutes(router *gin.Engine, h *Handlers, deps *Deps) {
	router.POST("/login", h.Auth.Login)

	router.GET("/menu", h.Menu.List)
	router.POST("/add-menu-item", middleware.AuthMiddleware(deps.JWTManager), h.Menu.Create)
	router.DELETE("/menu/:id", middleware.AuthMiddleware(deps.JWTManager), h.Menu.Delete)

	// Bill creation uses idempotency middleware so a retried request cannot
	// consume a second bill number.
	router.POST("/generate-bill", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Bill.Create)
	router.GET("/bills", h.Bill.List)
	router.DELETE("/bills/:id", h.Bill.Delete)
	router.GET("/print-bill/:id", h.Bill.PrintPDF)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}

	protected.POST("/bills/:id/print", h.Printer.PrintBill)
}

// registerStaticRoutes serves the built frontend alongside the API.
func registerStaticRoutes(router *gin.Engine, dir string) {
	router.StaticFile("/", filepath.Join(dir, "index.html"))
	router.Static("/public", dir)
}
