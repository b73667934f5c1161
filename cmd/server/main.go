// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

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

	_ "github.com/Brice601/etsydashboard-frontend/docs" // Import generated swagger docs
	"github.com/Brice601/etsydashboard-frontend/internal/api"
	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/backend"
	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/collect"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/seo"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
	"github.com/Brice601/etsydashboard-frontend/internal/supervisor"
	"github.com/Brice601/etsydashboard-frontend/internal/supervisor/services"
	"github.com/Brice601/etsydashboard-frontend/internal/usage"
	"github.com/Brice601/etsydashboard-frontend/internal/web"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.App.Environment).
		Str("backend_url", cfg.Backend.URL).
		Str("storage_path", cfg.Storage.Path).
		Msg("Starting Etsy Dashboard")

	// Hot-reload applies the log level only; everything else needs a restart.
	if path := config.ConfigFilePath(); path != "" {
		err := config.WatchConfigFile(path, func() {
			fresh, err := config.Load()
			if err != nil {
				logging.Warn().Err(err).Msg("Config reload failed, keeping current settings")
				return
			}
			logging.Init(logging.Config{
				Level:  fresh.Logging.Level,
				Format: fresh.Logging.Format,
				Caller: fresh.Logging.Caller,
			})
			logging.Info().Str("level", fresh.Logging.Level).Msg("Log level reloaded from config file")
		})
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
		}
	}

	// Open the store before anything that needs persistence. An empty path
	// means in-memory, which is only acceptable outside production.
	store, err := storage.Open(&cfg.Storage)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}()
	if cfg.Storage.Path == "" && cfg.App.IsProduction() {
		logging.Warn().Msg("Storage path is empty: sessions and uploads will not survive restarts")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backend client with rate limiting and circuit breaking baked in.
	backendClient := backend.New(&cfg.Backend)
	if err := backendClient.Health(ctx); err != nil {
		// The readiness probe reports this too; startup does not block on it.
		logging.Warn().Err(err).Msg("Analytics backend unreachable at startup (will retry)")
	} else {
		logging.Info().Msg("Connected to analytics backend")
	}

	// Authentication: server-side sessions, access keys, optional SSO.
	sessions := auth.NewManager(store, &cfg.Auth)
	keys := auth.NewKeyChecker(cfg.Auth.AccessKeyHashes)

	var sso *auth.SSOProvider
	if cfg.Auth.OIDC.Complete() {
		sso, err = auth.NewSSOProvider(ctx, &cfg.Auth.OIDC, store)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize SSO provider")
		}
		logging.Info().Str("issuer", cfg.Auth.OIDC.IssuerURL).Msg("SSO sign-in enabled")
	} else {
		logging.Info().Msg("SSO sign-in disabled (OIDC not configured)")
	}

	// Plan gate: which surfaces each plan may see and use.
	gate, err := authz.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization gate")
	}

	tracker := usage.NewTracker(store, &cfg.Usage)
	logging.Info().
		Int("weekly_limit", cfg.Usage.WeeklyLimit).
		Dur("duplicate_window", cfg.Usage.DuplicateWindow).
		Msg("Usage tracking configured")

	// Collector archives consented uploads for aggregate benchmark research.
	collector := collect.New(&cfg.Collector, store)
	defer func() {
		if err := collector.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing collector")
		}
	}()
	if cfg.Collector.Enabled {
		logging.Info().
			Str("dir", cfg.Collector.DataDir).
			Int("retention_days", cfg.Collector.RetentionDays).
			Msg("Dataset collector enabled")
	} else {
		logging.Info().Msg("Dataset collector disabled (COLLECTOR_ENABLED=false)")
	}

	benchmarks := cache.New("benchmarks", cfg.Cache.BenchmarkTTL)
	defer benchmarks.Close()

	renderer, err := web.NewRenderer(&cfg.App, seo.NewSnippets(&cfg.Analytics), gate)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build page renderer")
	}

	srv := api.NewServer(api.Deps{
		Config:     cfg,
		Renderer:   renderer,
		Sessions:   sessions,
		Keys:       keys,
		SSO:        sso,
		Gate:       gate,
		Usage:      tracker,
		Collector:  collector,
		Backend:    backendClient,
		Benchmarks: benchmarks,
	})

	// Application metrics: version gauge plus a ticking uptime counter.
	metrics.AppInfo.WithLabelValues(version, cfg.App.Environment).Set(1)
	uptimeDone := make(chan struct{})
	defer close(uptimeDone)
	metrics.StartUptimeTracker(uptimeDone, 15*time.Second)

	// Create supervisor tree. The slog adapter bridges zerolog to
	// sutureslog's handler.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Background layer: collector and the maintenance cron.
	if cfg.Collector.Enabled {
		tree.AddBackgroundService(collector)
	}

	maintenance, err := services.NewMaintenanceService(services.MaintenanceDeps{
		Sessions:          sessions,
		Usage:             tracker,
		Collector:         collector,
		RefreshBenchmarks: srv.RefreshBenchmarks,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to schedule maintenance jobs")
	}
	tree.AddBackgroundService(maintenance)

	// API layer: the HTTP server.
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
