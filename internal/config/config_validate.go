// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package config

import (
	"fmt"
	"net/url"
)

var (
	validLogLevels = map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	validLogFormats = map[string]bool{
		"json": true, "console": true,
	}
	validStoreBackends = map[string]bool{
		StoreBackendSupabase: true, StoreBackendPostgres: true, StoreBackendDuckDB: true,
	}
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateUpstream(); err != nil {
		return err
	}
	if err := c.validateDrivers(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateUpstream() error {
	if err := validateHTTPURL(c.Upstream.BaseURL, "ERGAST_BASE_URL"); err != nil {
		return err
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("ERGAST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDrivers() error {
	switch c.Drivers.Source {
	case DriverSourceAPI:
		return nil
	case DriverSourceStore:
		return c.validateStore()
	default:
		return fmt.Errorf("DRIVER_SOURCE must be one of: api, store (got %q)", c.Drivers.Source)
	}
}

// validateStore is only called when drivers are served from the store, so the
// placeholder credentials are acceptable in the default api mode.
func (c *Config) validateStore() error {
	if !validStoreBackends[c.Store.Backend] {
		return fmt.Errorf("STORE_BACKEND must be one of: supabase, postgres, duckdb (got %q)", c.Store.Backend)
	}
	if c.Store.Table == "" {
		return fmt.Errorf("STORE_TABLE is required when DRIVER_SOURCE=store")
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}

	switch c.Store.Backend {
	case StoreBackendSupabase:
		if c.Store.URL == "" || c.Store.URL == PlaceholderSupabaseURL {
			return fmt.Errorf("SUPABASE_URL is required when STORE_BACKEND=supabase")
		}
		if err := validateHTTPURL(c.Store.URL, "SUPABASE_URL"); err != nil {
			return err
		}
		if c.Store.Key == "" || c.Store.Key == PlaceholderSupabaseKey {
			return fmt.Errorf("SUPABASE_KEY is required when STORE_BACKEND=supabase")
		}
	case StoreBackendPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("STORE_DSN is required when STORE_BACKEND=postgres")
		}
	case StoreBackendDuckDB:
		if c.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required when STORE_BACKEND=duckdb")
		}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * for any)")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL requires an absolute http(s) URL without query parameters.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}
