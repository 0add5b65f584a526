// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/deltaf1/internal/config"
)

// DuckDB reads drivers from a local DuckDB file.
type DuckDB struct {
	conn    *sql.DB
	table   string
	timeout time.Duration
}

// NewDuckDB opens the database file at cfg.Path read-only. The file and the
// drivers table must already exist; rows are loaded by other tools.
func NewDuckDB(ctx context.Context, cfg *config.StoreConfig) (*DuckDB, error) {
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("duckdb database %s: %w", cfg.Path, err)
	}

	conn, err := sql.Open("duckdb", cfg.Path+"?access_mode=READ_ONLY")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	d := &DuckDB{conn: conn, table: cfg.Table, timeout: cfg.Timeout}
	if err := d.initialize(ctx); err != nil {
		closeQuietly(conn)
		return nil, err
	}
	return d, nil
}

// initialize checks the connection and that the table has every column in
// Columns.
func (d *DuckDB) initialize(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	rows, err := d.conn.QueryContext(ctx, selectQuery(d.table)+" LIMIT 0")
	if err != nil {
		return fmt.Errorf("drivers table %s is missing or incomplete: %w", d.table, err)
	}
	return rows.Close()
}

// ListDrivers returns every row ordered by driver code.
func (d *DuckDB) ListDrivers(ctx context.Context) (rows []Row, err error) {
	start := time.Now()
	defer func() { observe(d.Backend(), "list_drivers", start, err) }()

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	result, err := d.conn.QueryContext(ctx, selectQuery(d.table)+" ORDER BY driver_code")
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer closeQuietly(result)

	for result.Next() {
		row, scanErr := scanRow(result)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan driver row: %w", scanErr)
		}
		rows = append(rows, row)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating driver rows: %w", err)
	}
	return rows, nil
}

// Ping checks the database connection.
func (d *DuckDB) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(d.Backend(), "ping", start, err) }()

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.conn.PingContext(ctx)
}

// Backend returns "duckdb".
func (d *DuckDB) Backend() string { return config.StoreBackendDuckDB }

// Close closes the database.
func (d *DuckDB) Close() error {
	return d.conn.Close()
}

func (d *DuckDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
