package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/creditdesk/credit-service/internal/config"
	"github.com/creditdesk/credit-service/internal/handler"
	"github.com/creditdesk/credit-service/internal/integrations/cbr"
	"github.com/creditdesk/credit-service/internal/middleware"
	"github.com/creditdesk/credit-service/internal/repository"
	"github.com/creditdesk/credit-service/internal/service"
	"github.com/creditdesk/credit-service/internal/utils/email"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Run migrations
	if err := runMigrations(cfg); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	rates := cbr.NewCache(cbr.NewClient(cfg, logger), logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, rates, mailer, logger, cfg)
	h := handler.NewHandler(svc, rates)

	// Keep the key-rate cache warm
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", rates.Refresh); err != nil {
		logger.Fatalf("Failed to schedule key-rate refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	h.RegisterRoutes(r, middleware.AuthMiddleware(cfg))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

// runMigrations applies the SQL migrations from the migrations directory
func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsDir, cfg.DBConn)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
