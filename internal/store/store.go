// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package store reads curated driver rows from a managed table.
//
// Three backends are supported and chosen by configuration:
//
//   - supabase: the PostgREST endpoint of a Supabase project
//   - postgres: a direct PostgreSQL connection pool
//   - duckdb:   a local DuckDB database file
//
// All backends read the same columns from a single table (default "drivers").
// The store is read-only; rows are managed outside this service.
package store

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/tomtom215/deltaf1/internal/config"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/metrics"
)

// Row is one record of the drivers table. Nullable columns are pointers.
type Row struct {
	DriverCode     string  `json:"driver_code"`
	Cost           float64 `json:"cost"`
	DriverName     string  `json:"driver_name"`
	TeamName       string  `json:"team_name"`
	DeltaCost      float64 `json:"delta_cost"`
	ColorMain      string  `json:"color_main"`
	ColorAccent    string  `json:"color_accent"`
	ColorSecondary *string `json:"color_secondary"`
	DriverImage    *string `json:"driver_image"`
	TeamImage      *string `json:"team_image"`
}

// Reader is a read-only view of the drivers table.
type Reader interface {
	// ListDrivers returns every row of the table.
	ListDrivers(ctx context.Context) ([]Row, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Backend names the implementation, e.g. "duckdb".
	Backend() string
	io.Closer
}

// Columns lists the drivers table columns in scan order.
var Columns = []string{
	"driver_code",
	"cost",
	"driver_name",
	"team_name",
	"delta_cost",
	"color_main",
	"color_accent",
	"color_secondary",
	"driver_image",
	"team_image",
}

var validTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Open connects to the backend named by cfg.Backend.
func Open(ctx context.Context, cfg *config.StoreConfig) (Reader, error) {
	if !validTableName.MatchString(cfg.Table) {
		return nil, fmt.Errorf("invalid store table name %q", cfg.Table)
	}

	logging.Info().
		Str("backend", cfg.Backend).
		Str("table", cfg.Table).
		Msg("Opening driver store")

	switch cfg.Backend {
	case config.StoreBackendSupabase:
		return NewSupabase(cfg)
	case config.StoreBackendPostgres:
		return NewPostgres(ctx, cfg)
	case config.StoreBackendDuckDB:
		return NewDuckDB(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// selectQuery builds the read query for table. table must already be validated.
func selectQuery(table string) string {
	return "SELECT " + strings.Join(Columns, ", ") + " FROM " + table
}

// scanner is satisfied by *sql.Rows and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRow reads one row in Columns order.
func scanRow(s scanner) (Row, error) {
	var r Row
	err := s.Scan(
		&r.DriverCode,
		&r.Cost,
		&r.DriverName,
		&r.TeamName,
		&r.DeltaCost,
		&r.ColorMain,
		&r.ColorAccent,
		&r.ColorSecondary,
		&r.DriverImage,
		&r.TeamImage,
	)
	return r, err
}

// observe records the duration and outcome of a store query.
func observe(backend, operation string, start time.Time, err error) {
	duration := time.Since(start)
	metrics.RecordStoreQuery(backend, operation, duration, err)
	if err != nil {
		log := logging.WithComponent("store")
		log.Warn().
			Str("backend", backend).
			Str("operation", operation).
			Dur("duration", duration).
			Err(err).
			Msg("Store query failed")
	}
}

// closeQuietly closes a resource on error paths where the close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
