package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/salespulse/salespulse-backend/pkg/validator"

	"github.com/salespulse/salespulse-backend/internal/adapter/handler"
	"github.com/salespulse/salespulse-backend/internal/adapter/repository"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/cache"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/database"
	httpmw "github.com/salespulse/salespulse-backend/internal/infrastructure/http/middleware"
	"github.com/salespulse/salespulse-backend/internal/usecase/crm"
	"github.com/salespulse/salespulse-backend/internal/usecase/dashboard"
	"github.com/salespulse/salespulse-backend/internal/usecase/diagnostic"
	"github.com/salespulse/salespulse-backend/internal/usecase/profile"
	"github.com/salespulse/salespulse-backend/pkg/config"
	"github.com/salespulse/salespulse-backend/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply pending SQL migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize cache store. Redis is the normal deployment; the in-memory
	// store keeps local development working without one.
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore := cache.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB, "salespulse")
		if err := redisStore.Ping(context.Background()); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Println("⚠️  Redis disabled, using in-memory cache store")
		store = cache.NewMemoryStore()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	responseRepo := repository.NewResponseRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authMiddleware := httpmw.NewAuthMiddleware(jwtManager)

	// Initialize services
	log.Println("✨ Initializing services...")
	dashboardService := dashboard.NewService(opportunityRepo, responseRepo, store, logger)
	crmService := crm.NewService(responseRepo, opportunityRepo, dashboardService, logger)
	profileService := profile.NewService(profileRepo)
	diagnosticService := diagnostic.NewService(responseRepo, profileRepo, snapshotRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(jwtManager, logger)
	crmHandler := handler.NewCRMHandler(crmService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	diagnosticHandler := handler.NewDiagnosticHandler(diagnosticService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authMiddleware, authHandler, crmHandler, profileHandler, diagnosticHandler, dashboardHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
