// cmd/server is the application entry point. It wires config, database,
// repositories, services, and the HTTP delivery layer, then runs the server
// until SIGINT or SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"nevadotrek/config"
	_ "nevadotrek/docs"
	delivery "nevadotrek/internal/delivery/http"
	"nevadotrek/internal/delivery/http/controllers"
	"nevadotrek/internal/delivery/http/middleware"
	"nevadotrek/internal/repository/postgres"
	"nevadotrek/internal/services"
)

// @title Nevado Trek API
// @version 1.0
// @description Booking backend for guided treks: capacity-constrained departures, group pricing, per-client throttling.
// @BasePath /
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Secret-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to postgres")

	if cfg.AdminKey == "" {
		logger.Warn("ADMIN_SECRET_KEY not set, admin endpoints are locked")
	}

	tourRepo := postgres.NewTourRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	rateLimitRepo := postgres.NewRateLimitRepository(db)

	limiter := services.NewRateLimiter(rateLimitRepo, cfg.RateLimitWindow)
	tourService := services.NewTourService(tourRepo)
	bookingService := services.NewBookingService(tourRepo, eventRepo, bookingRepo, limiter, cfg.MaxCapacity)

	bookingController := controllers.NewBookingController(logger, bookingService, cfg.AdminKey)
	tourController := controllers.NewTourController(logger, tourService)
	adminController := controllers.NewAdminController(logger, tourService, bookingService)

	mux := delivery.NewRouter(bookingController, tourController, adminController, cfg.AdminKey)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
