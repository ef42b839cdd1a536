// Package main is the entry point for the Macro Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/macro-tracker/backend/config"
	"github.com/macro-tracker/backend/internal/infra/dependency"
	"github.com/macro-tracker/backend/internal/infra/server/router"
	"github.com/macro-tracker/backend/internal/integration/adapters"
	"github.com/macro-tracker/backend/internal/integration/filewatch"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Macro Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	clock := adapters.NewSystemClock(cfg.Tracker.Location())

	// Falls back to in-memory storage when the backend is unavailable
	injector, err := dependency.Bootstrap(ctx, cfg, clock)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := injector.Storage.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	injector.ImportRateLimiter.StartCleanup(ctx, cfg.RateLimit.ImportWindow)

	// Start the food import watcher if configured
	if cfg.Import.FoodsDir != "" {
		watcher, err := filewatch.NewWatcher(cfg.Import.FoodsDir, injector.ImportFoods, filewatch.DefaultDebounce)
		if err != nil {
			slog.Warn("Food import watcher not started", "dir", cfg.Import.FoodsDir, "error", err)
		} else {
			go watcher.Watch(ctx)
		}
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.WithCORS(engine, cfg.CORS.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
