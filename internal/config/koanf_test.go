// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points the loader at files that do not exist so tests are not
// affected by a config.yaml or .env in the package directory.
func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotEnvPathEnvVar, filepath.Join(dir, "missing.env"))
	t.Chdir(dir)
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "https://api.jolpi.ca/ergast/f1" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 10*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 10s", cfg.Upstream.Timeout)
	}
	if cfg.Drivers.Source != DriverSourceAPI {
		t.Errorf("Drivers.Source = %q, want api", cfg.Drivers.Source)
	}
	if cfg.Store.URL != PlaceholderSupabaseURL || cfg.Store.Key != PlaceholderSupabaseKey {
		t.Errorf("store credentials should default to placeholders, got %q / %q", cfg.Store.URL, cfg.Store.Key)
	}
	if cfg.Store.Table != "drivers" {
		t.Errorf("Store.Table = %q, want drivers", cfg.Store.Table)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"SUPABASE_URL", "store.url"},
		{"SUPABASE_KEY", "store.key"},
		{"DRIVER_SOURCE", "drivers.source"},
		{"ERGAST_TIMEOUT", "upstream.timeout"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"log_level", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("ERGAST_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Upstream.Timeout != 3*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 3s", cfg.Upstream.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateEnv(t)

	configContent := `
server:
  port: 8888
drivers:
  source: store
store:
  backend: duckdb
  path: /tmp/drivers.duckdb
logging:
  level: warn
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("env should override file: Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if !cfg.UsesStore() || cfg.Store.Backend != StoreBackendDuckDB {
		t.Errorf("expected duckdb store, got source=%q backend=%q", cfg.Drivers.Source, cfg.Store.Backend)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfDotEnv(t *testing.T) {
	isolateEnv(t)

	envPath := filepath.Join(t.TempDir(), ".env")
	content := "DRIVER_SOURCE=store\nSUPABASE_URL=https://project.supabase.co\nSUPABASE_KEY=anon-key\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv(DotEnvPathEnvVar, envPath)
	// godotenv.Load sets process variables; register them for cleanup.
	t.Setenv("DRIVER_SOURCE", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")
	os.Unsetenv("DRIVER_SOURCE")
	os.Unsetenv("SUPABASE_URL")
	os.Unsetenv("SUPABASE_KEY")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Store.URL != "https://project.supabase.co" || cfg.Store.Key != "anon-key" {
		t.Errorf("expected credentials from .env, got %q / %q", cfg.Store.URL, cfg.Store.Key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad upstream url", func(c *Config) { c.Upstream.BaseURL = "ftp://x" }, "ERGAST_BASE_URL"},
		{"zero upstream timeout", func(c *Config) { c.Upstream.Timeout = 0 }, "ERGAST_TIMEOUT"},
		{"unknown driver source", func(c *Config) { c.Drivers.Source = "csv" }, "DRIVER_SOURCE"},
		{"store with placeholder url", func(c *Config) { c.Drivers.Source = DriverSourceStore }, "SUPABASE_URL"},
		{"store with placeholder key", func(c *Config) {
			c.Drivers.Source = DriverSourceStore
			c.Store.URL = "https://project.supabase.co"
		}, "SUPABASE_KEY"},
		{"supabase configured", func(c *Config) {
			c.Drivers.Source = DriverSourceStore
			c.Store.URL = "https://project.supabase.co"
			c.Store.Key = "anon"
		}, ""},
		{"postgres without dsn", func(c *Config) {
			c.Drivers.Source = DriverSourceStore
			c.Store.Backend = StoreBackendPostgres
		}, "STORE_DSN"},
		{"unknown backend", func(c *Config) {
			c.Drivers.Source = DriverSourceStore
			c.Store.Backend = "mongo"
		}, "STORE_BACKEND"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
