// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package ergast

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/metrics"
	"github.com/tomtom215/deltaf1/internal/models/ergast"
)

// BreakerName is the circuit breaker label in metrics and health output.
const BreakerName = "ergast-api"

// CircuitBreakerClient wraps a Fetcher with a circuit breaker.
//
// Only UPSTREAM_UNAVAILABLE failures count against the breaker. A payload
// that fails to decode means the API answered, so it does not trip it.
// While the circuit is open, calls fail fast with UPSTREAM_UNAVAILABLE.
type CircuitBreakerClient struct {
	client Fetcher
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient wraps client. Configuration:
//   - 3 trial requests allowed while half-open
//   - counts reset every minute while closed
//   - 30 seconds open before trying again
//   - opens at >= 60% failures over at least 5 requests
func NewCircuitBreakerClient(client Fetcher) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return !apperrors.Is(err, apperrors.CodeUpstreamUnavailable)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: BreakerName}
}

// FetchRaces calls the wrapped client's FetchRaces through the breaker.
func (cbc *CircuitBreakerClient) FetchRaces(ctx context.Context, year int) ([]ergast.Race, error) {
	return castResult[[]ergast.Race](cbc.execute(resourceRaces, func() (interface{}, error) {
		return cbc.client.FetchRaces(ctx, year)
	}))
}

// FetchDrivers calls the wrapped client's FetchDrivers through the breaker.
func (cbc *CircuitBreakerClient) FetchDrivers(ctx context.Context, year int) ([]ergast.Driver, error) {
	return castResult[[]ergast.Driver](cbc.execute(resourceDrivers, func() (interface{}, error) {
		return cbc.client.FetchDrivers(ctx, year)
	}))
}

// State returns the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

func (cbc *CircuitBreakerClient) execute(resource string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Err(err).Str("resource", resource).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, apperrors.Unavailable(fetchMessage(resource), err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
	return nil, err
}

// castResult converts the breaker's untyped result back to T.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, apperrors.DataProcessing("circuit breaker", fmt.Errorf("unexpected result type %T", result))
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
