// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package apperrors defines the failure taxonomy shared by the upstream
// client, the driver store and the HTTP layer.
//
// Fetchers classify their failures when they happen; handlers only look at the
// Code to choose a status:
//
//	UPSTREAM_UNAVAILABLE -> 503
//	DATA_PROCESSING      -> 500
//	NOT_FOUND            -> 404
//	VALIDATION_ERROR     -> 400
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an Error.
type Code string

const (
	// CodeUpstreamUnavailable covers network failures, timeouts, non-2xx
	// responses and an open circuit breaker.
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	// CodeDataProcessing covers payload shape mismatches, store failures and
	// anything unexpected while transforming data.
	CodeDataProcessing Code = "DATA_PROCESSING"
	// CodeNotFound means the requested resource does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeValidation means the request parameters were rejected.
	CodeValidation Code = "VALIDATION_ERROR"
)

// Error is a classified error with a human-readable message and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "message: cause", the form returned to API clients.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Unavailable wraps cause as an upstream-unavailable failure.
func Unavailable(message string, cause error) *Error {
	return &Error{Code: CodeUpstreamUnavailable, Message: message, Cause: cause}
}

// DataProcessing wraps cause as a data-processing failure.
func DataProcessing(message string, cause error) *Error {
	return &Error{Code: CodeDataProcessing, Message: message, Cause: cause}
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeDataProcessing for unclassified errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeDataProcessing
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

// HTTPStatus maps err to the status code returned to clients.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
