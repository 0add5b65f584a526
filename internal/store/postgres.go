// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/deltaf1/internal/config"
)

// Postgres reads drivers over a pgx connection pool.
type Postgres struct {
	pool    *pgxpool.Pool
	table   string
	timeout time.Duration
}

// NewPostgres creates a pool for cfg.DSN. Connections are established lazily.
func NewPostgres(ctx context.Context, cfg *config.StoreConfig) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &Postgres{pool: pool, table: cfg.Table, timeout: cfg.Timeout}, nil
}

// ListDrivers returns every row ordered by driver code.
func (p *Postgres) ListDrivers(ctx context.Context) (drivers []Row, err error) {
	start := time.Now()
	defer func() { observe(p.Backend(), "list_drivers", start, err) }()

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, selectQuery(p.table)+" ORDER BY driver_code")
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	drivers, err = collectRows(rows)
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

// collectRows drains rows and closes them.
func collectRows(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating driver rows: %w", err)
	}
	return out, nil
}

// Ping acquires a connection and pings the server.
func (p *Postgres) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(p.Backend(), "ping", start, err) }()

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Backend returns "postgres".
func (p *Postgres) Backend() string { return config.StoreBackendPostgres }

// Close closes the pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func (p *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}
