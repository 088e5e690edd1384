package main

import (
	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/config"
	"github.com/clinicbook/receipts-api/internal/infrastructure/cache"
	"github.com/clinicbook/receipts-api/internal/infrastructure/database"
	"github.com/clinicbook/receipts-api/internal/infrastructure/repository"
	"github.com/clinicbook/receipts-api/internal/presentation/http/handler"
	"github.com/clinicbook/receipts-api/internal/presentation/http/routes"
	"github.com/clinicbook/receipts-api/internal/render"
	"github.com/clinicbook/receipts-api/pkg/oauth"
	"github.com/clinicbook/receipts-api/pkg/storage"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logrus.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Dashboard cache (no-op when Redis is not configured)
	cacheStore := cache.New(&cfg.Redis)

	// Profile photo storage
	diskStore, err := storage.NewDiskStore(cfg.Storage.Path, cfg.Storage.PublicBaseURL, cfg.Storage.UploadMaxSize)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Receipt rendering
	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse receipt layouts")
	}
	pdfExporter := render.NewPDFExporter()

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, jwtManager, googleOAuthService)
	receiptService := service.NewReceiptService(receiptRepo, cacheStore)
	templateService := service.NewTemplateService(templateRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, cacheStore)
	profileService := service.NewProfileService(profileRepo, diskStore)
	adminService := service.NewAdminService(userRepo, receiptRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Receipt:   handler.NewReceiptHandler(receiptService, templateService, htmlRenderer, pdfExporter),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Profile:   handler.NewProfileHandler(profileService),
		Template:  handler.NewTemplateHandler(templateService),
		Admin:     handler.NewAdminHandler(adminService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"port":    port,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
