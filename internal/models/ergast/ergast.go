// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package ergast holds the wire shapes of the jolpi/ergast statistics API.
//
// Every number in the payload arrives as a JSON string. The validate tags are
// checked after decoding so that a payload with the wrong shape is reported
// as a processing failure instead of producing half-empty records.
package ergast

// RaceResponse is the body of GET /{year}.json.
type RaceResponse struct {
	MRData RaceMRData `json:"MRData" validate:"required"`
}

type RaceMRData struct {
	Series    string    `json:"series"`
	Total     string    `json:"total"`
	RaceTable RaceTable `json:"RaceTable" validate:"required"`
}

type RaceTable struct {
	Season string `json:"season"`
	Races  []Race `json:"Races" validate:"required,dive"`
}

// Race is one entry of RaceTable.Races.
type Race struct {
	Season   string  `json:"season" validate:"required,numeric"`
	Round    string  `json:"round" validate:"required,numeric"`
	URL      string  `json:"url"`
	RaceName string  `json:"raceName" validate:"required"`
	Circuit  Circuit `json:"Circuit" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	// Time is absent for races whose start time was never published.
	Time string `json:"time,omitempty"`
}

type Circuit struct {
	CircuitID   string   `json:"circuitId"`
	URL         string   `json:"url"`
	CircuitName string   `json:"circuitName" validate:"required"`
	Location    Location `json:"Location" validate:"required"`
}

type Location struct {
	Lat      string `json:"lat"`
	Long     string `json:"long"`
	Locality string `json:"locality"`
	Country  string `json:"country" validate:"required"`
}

// DriverResponse is the body of GET /{year}/drivers.json.
type DriverResponse struct {
	MRData DriverMRData `json:"MRData" validate:"required"`
}

type DriverMRData struct {
	Series      string      `json:"series"`
	Total       string      `json:"total"`
	DriverTable DriverTable `json:"DriverTable" validate:"required"`
}

type DriverTable struct {
	Season  string   `json:"season"`
	Drivers []Driver `json:"Drivers" validate:"required,dive"`
}

// Driver is one entry of DriverTable.Drivers. Code and PermanentNumber are
// missing for many historical drivers.
type Driver struct {
	DriverID        string `json:"driverId" validate:"required"`
	PermanentNumber string `json:"permanentNumber,omitempty"`
	Code            string `json:"code,omitempty"`
	URL             string `json:"url"`
	GivenName       string `json:"givenName" validate:"required"`
	FamilyName      string `json:"familyName" validate:"required"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
}
