// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package races serves the race calendar: full listings, the
// "up to and including the next race" view and single-round lookups.
package races

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/clock"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/models"
	"github.com/tomtom215/deltaf1/internal/models/ergast"
	"github.com/tomtom215/deltaf1/internal/transform"
)

// ErrRaceNotFound is the detail returned when no race has the requested round.
const ErrRaceNotFound = "Race not found"

// RaceFetcher fetches the upstream calendar. A year of 0 means the current season.
type RaceFetcher interface {
	FetchRaces(ctx context.Context, year int) ([]ergast.Race, error)
}

// Service fetches and shapes race data. Every call goes to the upstream.
type Service struct {
	fetcher RaceFetcher
	clock   clock.Clock
}

// NewService creates a race service. A nil clock uses the system clock.
func NewService(fetcher RaceFetcher, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{fetcher: fetcher, clock: clk}
}

// List returns every race of year in round order. A year of 0 means the
// current season.
func (s *Service) List(ctx context.Context, year int) ([]models.Race, error) {
	recs, err := s.fetcher.FetchRaces(ctx, year)
	if err != nil {
		return nil, err
	}
	races, err := transform.RacesFromExternal(recs)
	if err != nil {
		return nil, apperrors.DataProcessing("Error processing race data", err)
	}
	return races, nil
}

// UpToNext returns the current season's completed races plus the next one,
// latest first.
func (s *Service) UpToNext(ctx context.Context) ([]models.Race, error) {
	races, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	result, err := UpToNext(races, s.clock.Now())
	if err != nil {
		return nil, apperrors.DataProcessing("Error processing race data", err)
	}
	logging.Ctx(ctx).Debug().Int("races", len(races)).Int("returned", len(result)).Msg("Filtered races up to next")
	return result, nil
}

// ByRound returns the current season's race with the given round.
func (s *Service) ByRound(ctx context.Context, round int) (models.Race, error) {
	races, err := s.List(ctx, 0)
	if err != nil {
		return models.Race{}, err
	}
	for i := range races {
		if races[i].Round == round {
			return races[i], nil
		}
	}
	return models.Race{}, apperrors.NotFound(ErrRaceNotFound)
}

// UpToNext keeps every race dated at or before now, plus the earliest race
// dated after now, and returns them in reverse of the input order.
//
// races are expected in ascending round order. A past race listed after a
// future one is still kept. now is compared against each race's full
// date-time; see ParseRaceTime for the accepted formats.
func UpToNext(races []models.Race, now time.Time) ([]models.Race, error) {
	starts := make([]time.Time, len(races))
	next := -1
	for i := range races {
		start, err := ParseRaceTime(races[i].Date)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", races[i].Round, err)
		}
		starts[i] = start
		if start.After(now) && (next < 0 || start.Before(starts[next])) {
			next = i
		}
	}

	result := make([]models.Race, 0, len(races))
	for i := range races {
		if i == next || !starts[i].After(now) {
			result = append(result, races[i])
		}
	}
	slices.Reverse(result)
	return result, nil
}

var raceTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseRaceTime parses a race date as RFC3339, as a zone-less date-time, or as
// a bare date. Zone-less values are taken as UTC.
func ParseRaceTime(value string) (time.Time, error) {
	for _, layout := range raceTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized race date %q", value)
}
