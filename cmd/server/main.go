// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package main is the entry point for the Delta F1 API server.
//
// Startup order:
//
//  1. Configuration: koanf (defaults, config.yaml, .env, environment)
//  2. Logging: zerolog
//  3. Statistics API client, wrapped in a circuit breaker when enabled
//  4. Driver source: live API or store (supabase, postgres, duckdb)
//  5. Chi router and HTTP server
//  6. Suture supervisor tree; SIGINT/SIGTERM trigger graceful shutdown
//
// Example:
//
//	export DRIVER_SOURCE=store
//	export STORE_BACKEND=supabase
//	export SUPABASE_URL=https://xyz.supabase.co
//	export SUPABASE_KEY=your-anon-key
//	./deltaf1
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

	_ "github.com/tomtom215/deltaf1/docs" // swagger docs
	"github.com/tomtom215/deltaf1/internal/api"
	"github.com/tomtom215/deltaf1/internal/clock"
	"github.com/tomtom215/deltaf1/internal/config"
	"github.com/tomtom215/deltaf1/internal/drivers"
	"github.com/tomtom215/deltaf1/internal/ergast"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/races"
	"github.com/tomtom215/deltaf1/internal/store"
	"github.com/tomtom215/deltaf1/internal/supervisor"
	"github.com/tomtom215/deltaf1/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("driver_source", cfg.Drivers.Source).
		Msg("Starting Delta F1 API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clk := clock.System()

	client := ergast.NewClient(&cfg.Upstream, clk)
	var fetcher ergast.Fetcher = client
	var breaker *ergast.CircuitBreakerClient
	if cfg.Upstream.CircuitBreaker {
		breaker = ergast.NewCircuitBreakerClient(client)
		fetcher = breaker
		logging.Info().Str("breaker", ergast.BreakerName).Msg("Circuit breaker enabled for statistics API")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var driverSource drivers.Source
	if cfg.UsesStore() {
		reader, err := store.Open(ctx, &cfg.Store)
		if err != nil {
			logging.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open driver store")
		}
		defer func() {
			if err := reader.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing driver store")
			}
		}()
		driverSource = drivers.NewStoreSource(reader)
		logging.Info().Str("backend", reader.Backend()).Str("table", cfg.Store.Table).Msg("Drivers served from store")
	} else {
		driverSource = drivers.NewAPISource(fetcher)
		logging.Info().Msg("Drivers served from statistics API")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(races.NewService(fetcher, clk), driverSource, cfg)
	if breaker != nil {
		handler.SetBreaker(breaker)
	}
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Delta F1 API stopped")
}
