// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

/*
Package api provides the HTTP REST layer for Delta F1.

Routes:

	GET /                      welcome message
	GET /api/races             race calendar (?year=, 0 or absent = current season)
	GET /api/races/upto        current season up to and including the next race, newest first
	GET /api/race/{round}      one race of the current season
	GET /api/drivers           driver listing with fantasy pricing (?year=)
	GET /api/drivers/images    driver code -> image URL
	GET /api/health/live       liveness probe
	GET /api/health/ready      readiness probe (circuit breaker and store)
	GET /metrics               Prometheus metrics
	GET /swagger/*             Swagger UI

Middleware stack (outermost first):

  - RequestID: accepts or generates X-Request-ID
  - RealIP, Recoverer, Compress (chi)
  - CORS (go-chi/cors), configured from SecurityConfig
  - Per-IP rate limiting (go-chi/httprate) on /api, with a looser limit on /api/health
  - Security headers and Prometheus request metrics on /api

Error Handling:

Every failure is an apperrors.Error. respondError maps its code to a status
and writes:

	{"detail": "Race not found", "code": "NOT_FOUND", "request_id": "..."}

Status mapping: VALIDATION_ERROR 400, RATE_LIMITED 429, NOT_FOUND 404,
UPSTREAM_UNAVAILABLE 503 and DATA_PROCESSING 500. Unknown errors are 500.

Thread Safety:

Handler holds no per-request state. Its services are safe for concurrent use.
*/
package api
