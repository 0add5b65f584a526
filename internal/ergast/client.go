// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package ergast is the outbound client for the jolpi/ergast statistics API.
//
// Every call is a single GET bounded by the configured timeout. There are no
// retries and no caching. Failures are classified on the spot:
//
//   - network errors, timeouts and non-2xx statuses are UPSTREAM_UNAVAILABLE
//   - undecodable or wrongly shaped payloads are DATA_PROCESSING
//
// CircuitBreakerClient wraps Client so that a dead upstream is reported
// immediately instead of tying up a request for the full timeout.
package ergast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/clock"
	"github.com/tomtom215/deltaf1/internal/config"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/metrics"
	"github.com/tomtom215/deltaf1/internal/models/ergast"
	"github.com/tomtom215/deltaf1/internal/validation"
)

// maxErrorBodySize limits how much of a failed response is kept for the error message.
const maxErrorBodySize = 4 * 1024

// Resource names used in metrics and error messages.
const (
	resourceRaces   = "races"
	resourceDrivers = "drivers"
)

// Fetcher is the read surface of the statistics API. A year of 0 means the
// current season.
type Fetcher interface {
	FetchRaces(ctx context.Context, year int) ([]ergast.Race, error)
	FetchDrivers(ctx context.Context, year int) ([]ergast.Driver, error)
}

// Client talks to the statistics API directly. It is safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
	clock   clock.Clock
}

// NewClient builds a client from the upstream configuration. A nil clock
// uses the system clock.
func NewClient(cfg *config.UpstreamConfig, clk clock.Clock) *Client {
	if clk == nil {
		clk = clock.System()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		clock:   clk,
	}
}

// FetchRaces returns the race calendar for year, in round order.
func (c *Client) FetchRaces(ctx context.Context, year int) ([]ergast.Race, error) {
	year = c.resolveYear(year)
	reqURL := fmt.Sprintf("%s/%d.json", c.baseURL, year)

	resp, err := getJSON[ergast.RaceResponse](ctx, c, resourceRaces, reqURL)
	if err != nil {
		return nil, err
	}
	return resp.MRData.RaceTable.Races, nil
}

// FetchDrivers returns every driver entered in year.
func (c *Client) FetchDrivers(ctx context.Context, year int) ([]ergast.Driver, error) {
	year = c.resolveYear(year)
	reqURL := fmt.Sprintf("%s/%d/drivers.json", c.baseURL, year)

	resp, err := getJSON[ergast.DriverResponse](ctx, c, resourceDrivers, reqURL)
	if err != nil {
		return nil, err
	}
	return resp.MRData.DriverTable.Drivers, nil
}

func (c *Client) resolveYear(year int) int {
	if year != 0 {
		return year
	}
	return clock.CurrentYear(c.clock)
}

// getJSON performs one GET against reqURL, decodes the body into T and
// validates it.
func getJSON[T any](ctx context.Context, c *Client, resource, reqURL string) (*T, error) {
	start := time.Now()
	log := logging.Ctx(ctx).With().Str("upstream_url", reqURL).Logger()

	body, err := c.executeRequest(ctx, reqURL)
	if err != nil {
		metrics.RecordUpstreamRequest(resource, "unavailable", time.Since(start))
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("Upstream request failed")
		return nil, apperrors.Unavailable(fetchMessage(resource), err)
	}
	defer body.Close()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		metrics.RecordUpstreamRequest(resource, "invalid", time.Since(start))
		log.Error().Err(err).Msg("Upstream response could not be decoded")
		return nil, apperrors.DataProcessing(processMessage(resource), fmt.Errorf("failed to decode response: %w", err))
	}

	if verr := validation.ValidateStruct(&result); verr != nil {
		metrics.RecordUpstreamRequest(resource, "invalid", time.Since(start))
		log.Error().Str("validation", verr.Error()).Msg("Upstream response has unexpected shape")
		return nil, apperrors.DataProcessing(processMessage(resource), verr)
	}

	metrics.RecordUpstreamRequest(resource, "success", time.Since(start))
	log.Debug().Dur("duration", time.Since(start)).Msg("Upstream request succeeded")
	return &result, nil
}

// executeRequest issues the GET and returns the body of a 2xx response.
func (c *Client) executeRequest(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}
	return resp.Body, nil
}

func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return strings.TrimSpace(string(body))
}

func fetchMessage(resource string) string {
	return "Failed to fetch " + resource + " from Ergast API"
}

func processMessage(resource string) string {
	return "Error processing " + strings.TrimSuffix(resource, "s") + " data"
}
