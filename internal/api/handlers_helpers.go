// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/models"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError maps err to a status with apperrors.HTTPStatus and writes
// {"detail": err.Error(), "code": ..., "request_id": ...}.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	code := string(apperrors.CodeOf(err))

	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.
		Str("code", code).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Int("status", status).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("API Error")

	writeError(w, r, status, code, err.Error())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	respondJSON(w, status, &models.ErrorBody{
		Detail:    detail,
		Code:      code,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

// parseYear reads the optional year query parameter. An absent or empty
// value is 0, which selects the current season. Any other integer is passed
// through to the statistics API unchanged.
func parseYear(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation("year must be an integer")
	}
	return year, nil
}

// parseRound reads the round path parameter. Integers that match no race are
// left for the race lookup to reject with NOT_FOUND.
func parseRound(r *http.Request) (int, error) {
	round, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "round")))
	if err != nil {
		return 0, apperrors.Validation("round must be an integer")
	}
	return round, nil
}
