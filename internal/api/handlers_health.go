// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/deltaf1/internal/models"
)

// Version is reported by the health endpoints and the API docs.
const Version = "1.0.0"

// readyCheckTimeout bounds dependency checks on the readiness probe.
const readyCheckTimeout = 3 * time.Second

// pinger is implemented by driver sources backed by a store.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /api/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "alive",
		Version: Version,
		Checks: map[string]string{
			"uptime": time.Since(h.startTime).Round(time.Second).String(),
		},
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 when the driver store cannot be reached or the upstream
// breaker is open.
//
// @Summary Readiness probe
// @Description Pings the driver store (store source only) and reports the statistics API circuit breaker state.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is ready"
// @Failure 503 {object} models.HealthStatus "Service is not ready"
// @Router /api/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, 2)
	ready := true

	if h.breaker != nil {
		state := h.breaker.State()
		checks["upstream"] = state
		if state == "open" {
			ready = false
		}
	}

	if p, ok := h.drivers.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		err := p.Ping(ctx)
		cancel()
		if err != nil {
			checks["store"] = "unreachable"
			ready = false
		} else {
			checks["store"] = "ok"
		}
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	respondJSON(w, code, models.HealthStatus{
		Status:       status,
		Version:      Version,
		DriverSource: h.drivers.Name(),
		Checks:       checks,
	})
}
