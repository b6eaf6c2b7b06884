package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/config"
	"github.com/advisorycontent/backend/internal/handlers"
	"github.com/advisorycontent/backend/internal/logger"
	"github.com/advisorycontent/backend/internal/middlewares"
	"github.com/advisorycontent/backend/internal/repositories"
	"github.com/advisorycontent/backend/internal/services"
)

const maxRequestSize = 1 * 1024 * 1024 // 1MB, JSON payloads only

// @title Advisory Content API
// @version 1.0
// @description API for managing advisory content records: dashboard images, expert images, admin posters, banners, feedback and message templates

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Advisory Content Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	dashboardImageRepo := repositories.NewDashboardImageRepository(db)
	expertImageRepo := repositories.NewExpertImageRepository(db)
	posterRepo := repositories.NewAdminPosterRepository(db)
	bannerRepo := repositories.NewBannerRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	templateRepo := repositories.NewMessageTemplateRepository(db)

	// Initialize services
	dashboardImageService := services.NewDashboardImageService(dashboardImageRepo)
	expertImageService := services.NewExpertImageService(expertImageRepo)
	posterService := services.NewAdminPosterService(posterRepo)
	bannerService := services.NewBannerService(bannerRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	templateService := services.NewMessageTemplateService(templateRepo)

	// Initialize handlers
	dashboardImageHandler := handlers.NewDashboardImageHandler(dashboardImageService, logger.Logger)
	expertImageHandler := handlers.NewExpertImageHandler(expertImageService, logger.Logger)
	posterHandler := handlers.NewAdminPosterHandler(posterService, logger.Logger)
	bannerHandler := handlers.NewBannerHandler(bannerService, logger.Logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger.Logger)
	templateHandler := handlers.NewMessageTemplateHandler(templateService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		dashboardImageHandler.RegisterRoutes(r)
		expertImageHandler.RegisterRoutes(r)
		posterHandler.RegisterRoutes(r)
		bannerHandler.RegisterRoutes(r)
		feedbackHandler.RegisterRoutes(r)
		templateHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "content_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
