// Package main is the entry point for the sieve API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"

	"sieve/internal/domain/preview"
	v1 "sieve/internal/infrastructure/http/v1"
	"sieve/pkg/logger"
)

func main() {
	// A missing .env is fine; the process environment still applies.
	envErr := godotenv.Load()

	cfg := loadConfig()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warnw("failed to load .env", "error", envErr)
	}

	log.Infow("starting sieve server", "env", cfg.Env)

	// --- Resource registry ---
	registry, err := setupRegistry(cfg.SchemaPath)
	if err != nil {
		log.Fatalw("failed to load resource schema", "path", cfg.SchemaPath, "error", err)
	}
	log.Infow("resource registry initialized", "resources", registry.Len(), "schema", cfg.SchemaPath)

	// --- Preview service ---
	previewService := preview.NewService(preview.Config{
		Registry: registry,
		Query:    cfg.Query,
	})
	log.Infow("preview service initialized",
		"default_limit", cfg.Query.DefaultLimit,
		"max_limit", cfg.Query.MaxLimit,
		"clamp_limit", cfg.Query.ClampLimit,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:   log,
		Registry: registry,
		Preview:  previewService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      gzhttp.GzipHandler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
