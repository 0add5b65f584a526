// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package transform maps upstream ergast records to the API response shapes.
// All functions are pure: the same input always yields the same output.
package transform

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/deltaf1/internal/models"
	"github.com/tomtom215/deltaf1/internal/models/ergast"
	"github.com/tomtom215/deltaf1/internal/reference"
)

// DriverCost is the flat price of every driver sourced from the statistics API.
const DriverCost = 30.0

// DefaultRaceTime is used when the upstream has not published a start time.
const DefaultRaceTime = "00:00:00"

const driverImageTemplate = "https://media.formula1.com/d_driver_fallback_image.png/content/dam/fom-website/drivers/%s/%s_%s_%s/%s.png"

// RaceFromExternal converts one upstream race.
//
// Date is the upstream date and start time joined by "T", for example
// "2024-03-02T15:00:00Z", with DefaultRaceTime when no time is published.
func RaceFromExternal(rec *ergast.Race) (models.Race, error) {
	round, err := strconv.Atoi(rec.Round)
	if err != nil {
		return models.Race{}, fmt.Errorf("race %q: invalid round %q: %w", rec.RaceName, rec.Round, err)
	}
	year, err := strconv.Atoi(rec.Season)
	if err != nil {
		return models.Race{}, fmt.Errorf("race %q: invalid season %q: %w", rec.RaceName, rec.Season, err)
	}

	raceTime := rec.Time
	if raceTime == "" {
		raceTime = DefaultRaceTime
	}

	country := rec.Circuit.Location.Country
	return models.Race{
		ID:          round,
		Round:       round,
		Name:        rec.RaceName,
		Circuit:     rec.Circuit.CircuitName,
		Country:     country,
		CountryCode: reference.CountryCode(country),
		Date:        rec.Date + "T" + raceTime,
		Year:        year,
	}, nil
}

// RacesFromExternal converts a full calendar, preserving order. It fails on
// the first record that cannot be converted.
func RacesFromExternal(recs []ergast.Race) ([]models.Race, error) {
	races := make([]models.Race, 0, len(recs))
	for i := range recs {
		race, err := RaceFromExternal(&recs[i])
		if err != nil {
			return nil, err
		}
		races = append(races, race)
	}
	return races, nil
}

// DriverFromExternal converts one upstream driver. ok is false when the
// driver's code is not part of the current line-up; such drivers are dropped.
func DriverFromExternal(rec *ergast.Driver) (driver models.Driver, ok bool) {
	team, ok := reference.TeamForDriver(rec.Code)
	if !ok {
		return models.Driver{}, false
	}

	return models.Driver{
		DriverCode:  rec.Code,
		Cost:        DriverCost,
		DriverName:  rec.GivenName + " " + rec.FamilyName,
		TeamName:    team,
		DeltaCost:   DeltaCost(rec.Code),
		DriverImage: DriverImageURL(rec.GivenName, rec.FamilyName),
		TeamImage:   reference.TeamImage(team),
		Colors:      reference.TeamColors(team),
	}, true
}

// DriversFromExternal converts every listed driver, preserving order.
func DriversFromExternal(recs []ergast.Driver) []models.Driver {
	drivers := make([]models.Driver, 0, len(recs))
	for i := range recs {
		if d, ok := DriverFromExternal(&recs[i]); ok {
			drivers = append(drivers, d)
		}
	}
	return drivers
}

// DeltaCost derives a stable price movement in [-1.0, 1.0] from the driver
// code: the 32-bit FNV-1a hash of the code modulo 21, shifted to -10..10 and
// scaled to one decimal place.
func DeltaCost(code string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	step := int(h.Sum32()%21) - 10
	return float64(step) / 10
}

// DriverImageURL guesses the formula1.com headshot URL for a driver.
//
// The media host names files after the first three letters of the given and
// family names plus "01", e.g. Lando Norris -> LANNOR01. The URL is not
// checked and may not exist.
func DriverImageURL(givenName, familyName string) string {
	id := strings.ToUpper(prefix(givenName, 3)+prefix(familyName, 3)) + "01"
	initial := strings.ToUpper(prefix(givenName, 1))
	return fmt.Sprintf(driverImageTemplate, initial, id, givenName, familyName, strings.ToLower(id))
}

// prefix returns the first n runes of s, or all of s when it is shorter.
func prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
