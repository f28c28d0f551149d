package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/protractor09/ai-dashboard/internal/config"
	"github.com/protractor09/ai-dashboard/internal/dataset"
	"github.com/protractor09/ai-dashboard/internal/ingest"
	"github.com/protractor09/ai-dashboard/internal/logging"
	"github.com/protractor09/ai-dashboard/internal/resolver"
	"github.com/protractor09/ai-dashboard/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"upload_max_concurrent", cfg.Upload.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"pulse_enabled", cfg.Pulse.Enabled,
		"resolver_configured", cfg.Resolver.URL != "",
	)

	store := dataset.NewStore()

	res := resolver.New(resolver.Config{
		URL:     cfg.Resolver.URL,
		APIKey:  cfg.Resolver.APIKey,
		Timeout: cfg.Resolver.Timeout,
	})

	limiter := ingest.NewLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime)

	server := web.NewServer(cfg, store, res, limiter)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	if cfg.Pulse.Enabled {
		go store.StartPulse(jobCtx, dataset.PulseConfig{
			Interval:     cfg.Pulse.Interval,
			DriftPercent: cfg.Pulse.DriftPercent,
		})
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for in-flight uploads to finish parsing (with timeout)
		if active := limiter.Active(); active > 0 {
			slog.Info("waiting for uploads to complete", "active", active)
			if err := limiter.WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("uploads did not complete in time", "error", err)
			} else {
				slog.Info("all uploads completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
