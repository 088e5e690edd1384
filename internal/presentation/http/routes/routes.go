package routes

import (
	"time"

	"github.com/clinicbook/receipts-api/internal/config"
	"github.com/clinicbook/receipts-api/internal/presentation/http/handler"
	"github.com/clinicbook/receipts-api/internal/presentation/http/middleware"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Receipt   *handler.ReceiptHandler
	Dashboard *handler.DashboardHandler
	Profile   *handler.ProfileHandler
	Template  *handler.TemplateHandler
	Admin     *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

	// Uploaded profile photos
	router.Static(deps.Cfg.Storage.PublicBaseURL, deps.Cfg.Storage.Path)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"message": "Route not found",
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

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.GET("/profile", h.Profile.Get)
	protected.PUT("/profile", h.Profile.Update)
	protected.POST("/profile/photo", h.Profile.UploadPhoto)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Receipts
	registerReceiptRoutes(protected, h)

	// Templates (read-only for regular users)
	registerTemplateRoutes(protected, h)

	// Admin panel
	registerAdminRoutes(protected, h)
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.GET("/:id/render", h.Receipt.Render)
		receipts.GET("/:id/pdf", h.Receipt.ExportPDF)
	}
}

func registerTemplateRoutes(protected *gin.RouterGroup, h *Handlers) {
	templates := protected.Group("/templates")
	{
		templates.GET("", h.Template.List)
		templates.GET("/:id", h.Template.Get)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/users/:id/receipts", h.Admin.ListUserReceipts)
		admin.PUT("/users/:id/role", h.Admin.SetUserRole)

		// Panel actions wired to placeholder operations
		admin.PUT("/users/:id/credentials", h.Admin.UpdateUserCredentials)
		admin.POST("/users/:id/block", h.Admin.BlockUser)
		admin.POST("/users/:id/unblock", h.Admin.UnblockUser)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)
		admin.POST("/users/:id/impersonate", h.Admin.ImpersonateUser)

		// Template management
		admin.POST("/templates", h.Template.Create)
		admin.DELETE("/templates/:id", h.Template.Delete)
		admin.PUT("/templates/:id/default", h.Template.SetDefault)
	}
}
