// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/deltaf1/internal/config"
	"github.com/tomtom215/deltaf1/internal/drivers"
	"github.com/tomtom215/deltaf1/internal/models"
)

// RootMessage is the body returned by GET /.
const RootMessage = "Delta F1 API is running!"

// RaceService is the race calendar used by the race endpoints.
type RaceService interface {
	List(ctx context.Context, year int) ([]models.Race, error)
	UpToNext(ctx context.Context) ([]models.Race, error)
	ByRound(ctx context.Context, round int) (models.Race, error)
}

// BreakerStater reports the upstream circuit breaker state.
type BreakerStater interface {
	State() string
}

// Handler serves the race and driver endpoints.
//
// Every request goes straight to the configured sources; nothing is cached
// and no state is shared between requests.
type Handler struct {
	races     RaceService
	drivers   drivers.Source
	breaker   BreakerStater
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler over the race service and the driver source
// chosen at startup.
func NewHandler(raceService RaceService, driverSource drivers.Source, cfg *config.Config) *Handler {
	return &Handler{
		races:     raceService,
		drivers:   driverSource,
		config:    cfg,
		startTime: time.Now(),
	}
}

// SetBreaker exposes the upstream breaker state on the readiness endpoint.
func (h *Handler) SetBreaker(b BreakerStater) {
	h.breaker = b
}

// Root reports that the service is up.
//
// @Summary Service banner
// @Description Returns a fixed message confirming the API is running.
// @Tags Core
// @Produce json
// @Success 200 {object} models.RootMessage
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.RootMessage{Message: RootMessage})
}

// Races lists a season's races.
//
// @Summary List races
// @Description Returns every race of the season in round order. Defaults to the current season.
// @Tags Races
// @Produce json
// @Param year query int false "Season, defaults to the current one"
// @Success 200 {array} models.Race
// @Failure 400 {object} models.ErrorBody "Year is not an integer"
// @Failure 500 {object} models.ErrorBody "Upstream data could not be processed"
// @Failure 503 {object} models.ErrorBody "Statistics API unavailable"
// @Router /api/races [get]
func (h *Handler) Races(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	races, err := h.races.List(r.Context(), year)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, races)
}

// RacesUpTo lists the current season's completed races and the next one.
//
// @Summary Races up to the next one
// @Description Returns the completed races of the current season plus the next scheduled race, most recent first.
// @Tags Races
// @Produce json
// @Success 200 {array} models.Race
// @Failure 500 {object} models.ErrorBody "Upstream data could not be processed"
// @Failure 503 {object} models.ErrorBody "Statistics API unavailable"
// @Router /api/races/upto [get]
func (h *Handler) RacesUpTo(w http.ResponseWriter, r *http.Request) {
	races, err := h.races.UpToNext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, races)
}

// RaceByRound returns one race of the current season.
//
// @Summary Get race by round
// @Tags Races
// @Produce json
// @Param round path int true "Round number"
// @Success 200 {object} models.Race
// @Failure 400 {object} models.ErrorBody "Round is not an integer"
// @Failure 404 {object} models.ErrorBody "Race not found"
// @Failure 503 {object} models.ErrorBody "Statistics API unavailable"
// @Router /api/race/{round} [get]
func (h *Handler) RaceByRound(w http.ResponseWriter, r *http.Request) {
	round, err := parseRound(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	race, err := h.races.ByRound(r.Context(), round)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, race)
}

// Drivers lists drivers with pricing and team colors.
//
// @Summary List drivers
// @Description Returns the drivers of the season from the configured source. The store source ignores year.
// @Tags Drivers
// @Produce json
// @Param year query int false "Season, defaults to the current one"
// @Success 200 {array} models.Driver
// @Failure 400 {object} models.ErrorBody "Year is not an integer"
// @Failure 500 {object} models.ErrorBody "Driver data could not be processed"
// @Failure 503 {object} models.ErrorBody "Statistics API unavailable"
// @Router /api/drivers [get]
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	list, err := h.drivers.ListDrivers(r.Context(), year)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// DriverImages maps driver codes to headshot URLs.
//
// @Summary Driver images
// @Description Returns a map of driver code to image URL. Drivers without an image are omitted.
// @Tags Drivers
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorBody "Driver data could not be processed"
// @Failure 503 {object} models.ErrorBody "Statistics API unavailable"
// @Router /api/drivers/images [get]
func (h *Handler) DriverImages(w http.ResponseWriter, r *http.Request) {
	list, err := h.drivers.ListDrivers(r.Context(), 0)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, drivers.Images(list))
}
