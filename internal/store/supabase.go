// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/deltaf1/internal/config"
)

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 4096

// Supabase reads drivers through a project's PostgREST endpoint:
// GET {url}/rest/v1/{table}?select=...
type Supabase struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
}

// NewSupabase creates a Supabase reader. No request is made until the first query.
func NewSupabase(cfg *config.StoreConfig) (*Supabase, error) {
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid supabase url %q: %w", cfg.URL, err)
	}
	return &Supabase{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		table:   cfg.Table,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// ListDrivers returns every row ordered by driver code.
func (s *Supabase) ListDrivers(ctx context.Context) (rows []Row, err error) {
	start := time.Now()
	defer func() { observe(s.Backend(), "list_drivers", start, err) }()

	q := url.Values{}
	q.Set("select", strings.Join(Columns, ","))
	q.Set("order", "driver_code.asc")

	body, err := s.get(ctx, q)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(body)

	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return rows, nil
}

// Ping reads a single code from the table.
func (s *Supabase) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(s.Backend(), "ping", start, err) }()

	q := url.Values{}
	q.Set("select", "driver_code")
	q.Set("limit", "1")

	body, err := s.get(ctx, q)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

// Backend returns "supabase".
func (s *Supabase) Backend() string { return config.StoreBackendSupabase }

// Close releases idle connections.
func (s *Supabase) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// get issues an authenticated read against the table and returns the body of
// a 2xx response. The caller must close it.
func (s *Supabase) get(ctx context.Context, query url.Values) (io.ReadCloser, error) {
	endpoint := s.baseURL + "/rest/v1/" + s.table + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		closeQuietly(resp.Body)
		return nil, fmt.Errorf("supabase returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}
	return resp.Body, nil
}
