// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package models contains the response shapes served by the Delta F1 API.
// Upstream wire shapes live in the ergast subpackage.
package models

// Race is a single Grand Prix of a season.
// ID always equals Round.
type Race struct {
	ID          int    `json:"id" example:"5"`
	Round       int    `json:"round" example:"5"`
	Name        string `json:"name" example:"Miami Grand Prix"`
	Circuit     string `json:"circuit" example:"Miami International Autodrome"`
	Country     string `json:"country" example:"USA"`
	CountryCode string `json:"countryCode" example:"us"`
	// Date is the ISO8601 start date-time, e.g. 2025-05-04T20:00:00Z.
	Date string `json:"date" example:"2025-05-04T20:00:00Z"`
	Year int    `json:"year" example:"2025"`
}

// ColorSet holds a team's UI colors as hex strings.
type ColorSet struct {
	Main      string  `json:"main" example:"#DE6A10"`
	Accent    string  `json:"accent" example:"#000000"`
	Secondary *string `json:"secondary" example:"#FF8700"`
}

// Driver is a fantasy-pricing view of a race driver.
type Driver struct {
	DriverCode  string   `json:"driverCode" example:"NOR"`
	Cost        float64  `json:"cost" example:"30"`
	DriverName  string   `json:"driverName" example:"Lando Norris"`
	TeamName    string   `json:"teamName" example:"McLaren Racing"`
	DeltaCost   float64  `json:"deltaCost" example:"0.4"`
	DriverImage string   `json:"driverImage"`
	TeamImage   string   `json:"teamImage" example:"src/assets/mclaren.avif"`
	Colors      ColorSet `json:"colors"`
}

// RootMessage is the body of the liveness endpoint at "/".
type RootMessage struct {
	Message string `json:"message" example:"Delta F1 API is running!"`
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Detail    string `json:"detail" example:"Race not found"`
	Code      string `json:"code" example:"NOT_FOUND"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string            `json:"status" example:"ok"`
	Version      string            `json:"version" example:"1.0.0"`
	DriverSource string            `json:"driver_source,omitempty" example:"api"`
	Checks       map[string]string `json:"checks,omitempty"`
}
