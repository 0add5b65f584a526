// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package drivers provides the two interchangeable ways of listing drivers:
// live from the statistics API, or from a curated store table. A deployment
// picks one at startup; handlers only see the Source interface.
package drivers

import (
	"context"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/logging"
	"github.com/tomtom215/deltaf1/internal/models"
	"github.com/tomtom215/deltaf1/internal/models/ergast"
	"github.com/tomtom215/deltaf1/internal/store"
	"github.com/tomtom215/deltaf1/internal/transform"
)

// Source lists drivers for the API.
type Source interface {
	// ListDrivers returns the drivers of year. A year of 0 means the current
	// season. Sources without seasonal data ignore year.
	ListDrivers(ctx context.Context, year int) ([]models.Driver, error)
	// Name identifies the source in logs and health output.
	Name() string
}

// DriverFetcher fetches the upstream driver list.
type DriverFetcher interface {
	FetchDrivers(ctx context.Context, year int) ([]ergast.Driver, error)
}

// APISource derives drivers from the statistics API, keeping only the
// current line-up and pricing every driver at transform.DriverCost.
type APISource struct {
	fetcher DriverFetcher
}

// NewAPISource creates an API-backed source.
func NewAPISource(fetcher DriverFetcher) *APISource {
	return &APISource{fetcher: fetcher}
}

// ListDrivers fetches and transforms the drivers of year.
func (s *APISource) ListDrivers(ctx context.Context, year int) ([]models.Driver, error) {
	recs, err := s.fetcher.FetchDrivers(ctx, year)
	if err != nil {
		return nil, err
	}
	drivers := transform.DriversFromExternal(recs)
	logging.Ctx(ctx).Debug().
		Int("fetched", len(recs)).
		Int("kept", len(drivers)).
		Msg("Transformed drivers")
	return drivers, nil
}

// Name returns "api".
func (s *APISource) Name() string { return "api" }

// StoreSource reads drivers verbatim from a store table.
type StoreSource struct {
	reader store.Reader
}

// NewStoreSource creates a store-backed source.
func NewStoreSource(reader store.Reader) *StoreSource {
	return &StoreSource{reader: reader}
}

// ListDrivers returns every stored driver. year is ignored.
func (s *StoreSource) ListDrivers(ctx context.Context, _ int) ([]models.Driver, error) {
	rows, err := s.reader.ListDrivers(ctx)
	if err != nil {
		return nil, apperrors.DataProcessing("Error fetching drivers from store", err)
	}
	drivers := make([]models.Driver, 0, len(rows))
	for i := range rows {
		drivers = append(drivers, FromRow(&rows[i]))
	}
	return drivers, nil
}

// Ping checks the underlying store.
func (s *StoreSource) Ping(ctx context.Context) error {
	return s.reader.Ping(ctx)
}

// Name returns "store".
func (s *StoreSource) Name() string { return "store" }

// FromRow maps a store row to a Driver. Missing image URLs become empty
// strings; a missing secondary color stays null.
func FromRow(row *store.Row) models.Driver {
	return models.Driver{
		DriverCode:  row.DriverCode,
		Cost:        row.Cost,
		DriverName:  row.DriverName,
		TeamName:    row.TeamName,
		DeltaCost:   row.DeltaCost,
		DriverImage: deref(row.DriverImage),
		TeamImage:   deref(row.TeamImage),
		Colors: models.ColorSet{
			Main:      row.ColorMain,
			Accent:    row.ColorAccent,
			Secondary: row.ColorSecondary,
		},
	}
}

// Images maps each driver code to its image URL, omitting drivers without one.
func Images(drivers []models.Driver) map[string]string {
	images := make(map[string]string, len(drivers))
	for i := range drivers {
		if drivers[i].DriverImage == "" {
			continue
		}
		images[drivers[i].DriverCode] = drivers[i].DriverImage
	}
	return images
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
