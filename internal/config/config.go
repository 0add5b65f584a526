// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package config loads the service configuration from defaults, an optional
// YAML file and environment variables.
package config

import "time"

// Driver sources.
const (
	DriverSourceAPI   = "api"
	DriverSourceStore = "store"
)

// Store backends.
const (
	StoreBackendSupabase = "supabase"
	StoreBackendPostgres = "postgres"
	StoreBackendDuckDB   = "duckdb"
)

// Placeholders used when the store credentials are not supplied.
const (
	PlaceholderSupabaseURL = "your-supabase-url"
	PlaceholderSupabaseKey = "your-supabase-key"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Drivers  DriversConfig  `koanf:"drivers"`
	Store    StoreConfig    `koanf:"store"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// UpstreamConfig configures the jolpi/ergast statistics API client.
type UpstreamConfig struct {
	BaseURL        string        `koanf:"base_url"`
	Timeout        time.Duration `koanf:"timeout"`
	CircuitBreaker bool          `koanf:"circuit_breaker"`
}

// DriversConfig selects where driver listings come from.
type DriversConfig struct {
	Source string `koanf:"source"` // api or store
}

// StoreConfig configures the managed driver store. Only the settings of the
// selected backend are used.
type StoreConfig struct {
	Backend string        `koanf:"backend"` // supabase, postgres or duckdb
	URL     string        `koanf:"url"`     // Supabase project URL
	Key     string        `koanf:"key"`     // Supabase API key
	DSN     string        `koanf:"dsn"`     // Postgres connection string
	Path    string        `koanf:"path"`    // DuckDB database file
	Table   string        `koanf:"table"`
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// UsesStore reports whether drivers are served from the managed store.
func (c *Config) UsesStore() bool {
	return c.Drivers.Source == DriverSourceStore
}

// Load reads configuration using the layered koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
