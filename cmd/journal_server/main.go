package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/adapters/backend"
	"github.com/SscSPs/journal_lifecycle_app/internal/adapters/database/memory"
	"github.com/SscSPs/journal_lifecycle_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/journal_lifecycle_app/internal/adapters/export/local"
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/handlers"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
	"github.com/SscSPs/journal_lifecycle_app/internal/observability/metrics"
	"github.com/SscSPs/journal_lifecycle_app/internal/platform/config"
	"github.com/SscSPs/journal_lifecycle_app/internal/utils"
	"github.com/SscSPs/journal_lifecycle_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Journal Lifecycle API
// @version 1.0
// @description Backend-for-frontend for drafting, reviewing, posting and exporting journal entries.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics.Init()
	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Editor drafts live in PostgreSQL when a database is configured, otherwise in memory
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		repos = memory.NewRepositoryProvider()
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	gw := backend.NewClient(cfg.Backend)
	serviceContainer := services.NewServiceContainer(cfg, repos, gw, local.NewRenderer())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, metrics, recovery, CORS, rate limiting, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.MetricsMiddleware(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	// Let background export tracking finish before the process exits
	serviceContainer.Export.Wait()
	logger.Info("Server stopped")
}
