// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package reference holds the static lookup tables used to decorate upstream
// data: country codes, the driver line-up, team colors and team artwork.
//
// The tables are package-level values built at init and never written again,
// so lookups are safe from any goroutine. Callers get copies, never the maps.
package reference

import "github.com/tomtom215/deltaf1/internal/models"

// Defaults returned on lookup misses.
const (
	DefaultCountryCode = "F1"
	DefaultTeamImage   = "/assets/default.avif"
)

// DefaultColors is returned for teams without an entry in the color table.
func DefaultColors() models.ColorSet {
	return models.ColorSet{Main: "#FFFFFF", Accent: "#000000", Secondary: strPtr("#808080")}
}

var countryCodes = map[string]string{
	"Australia":     "au",
	"Bahrain":       "bh",
	"Saudi Arabia":  "sa",
	"Japan":         "jp",
	"China":         "cn",
	"United States": "us",
	"Italy":         "it",
	"Monaco":        "mc",
	"Canada":        "ca",
	"Spain":         "es",
	"Austria":       "at",
	"UK":            "gb",
	"Hungary":       "hu",
	"Belgium":       "be",
	"Netherlands":   "nl",
	"Singapore":     "sg",
	"Azerbaijan":    "az",
	"Mexico":        "mx",
	"Brazil":        "br",
	"Qatar":         "qa",
	"UAE":           "ae",
	"USA":           "us",
}

// Team names as they appear in the color and image tables.
const (
	TeamWilliams    = "Williams Racing"
	TeamRedBull     = "Red Bull Racing"
	TeamFerrari     = "Ferrari"
	TeamMcLaren     = "McLaren Racing"
	TeamMercedes    = "Mercedes"
	TeamAstonMartin = "Aston Martin"
	TeamHaas        = "Haas F1 Team"
	TeamAlpine      = "Alpine F1 Team"
	TeamRB          = "RB F1 Team"
	TeamKickSauber  = "Kick Sauber"
)

var driverTeams = map[string]string{
	"ALB": TeamWilliams,
	"SAI": TeamWilliams,
	"VER": TeamRedBull,
	"TSU": TeamRedBull,
	"HAM": TeamFerrari,
	"LEC": TeamFerrari,
	"NOR": TeamMcLaren,
	"PIA": TeamMcLaren,
	"RUS": TeamMercedes,
	"ANT": TeamMercedes,
	"ALO": TeamAstonMartin,
	"STR": TeamAstonMartin,
	"BEA": TeamHaas,
	"OCO": TeamHaas,
	"GAS": TeamAlpine,
	"COL": TeamAlpine,
	"HAD": TeamRB,
	"LAW": TeamRB,
	"BOR": TeamKickSauber,
	"HUL": TeamKickSauber,
}

var teamColors = map[string]models.ColorSet{
	TeamWilliams:    {Main: "#041E42", Accent: "#FFFFFF"},
	TeamRedBull:     {Main: "#001526", Accent: "#0073D0"},
	TeamFerrari:     {Main: "#B41726", Accent: "#FFFFFF", Secondary: strPtr("#B41726")},
	TeamMcLaren:     {Main: "#DE6A10", Accent: "#000000", Secondary: strPtr("#FF8700")},
	TeamMercedes:    {Main: "#00d7b7", Accent: "#000000", Secondary: strPtr("#FFFFFF")},
	TeamAstonMartin: {Main: "#0A5A4F", Accent: "#CEDC00"},
	TeamHaas:        {Main: "#000", Accent: "#D92A1C", Secondary: strPtr("#FFFFFF")},
	TeamAlpine:      {Main: "#061A4D", Accent: "#FF87BC"},
	TeamRB:          {Main: "#1433C9", Accent: "#FFFFFF"},
	TeamKickSauber:  {Main: "#07C00F", Accent: "#000000"},
}

var teamImages = map[string]string{
	TeamWilliams:    "src/assets/williams.avif",
	TeamRedBull:     "src/assets/redbull.avif",
	TeamFerrari:     "src/assets/ferrari.avif",
	TeamMcLaren:     "src/assets/mclaren.avif",
	TeamMercedes:    "src/assets/mercedes.avif",
	TeamAstonMartin: "src/assets/aston_martin.avif",
	TeamHaas:        "src/assets/haas.avif",
	TeamAlpine:      "src/assets/alpine.avif",
	TeamRB:          "src/assets/vcarb.avif",
	TeamKickSauber:  "src/assets/kick_sauber.avif",
}

// CountryCode returns the lowercase ISO code for an ergast country name,
// or DefaultCountryCode when the country is unknown.
func CountryCode(country string) string {
	if code, ok := countryCodes[country]; ok {
		return code
	}
	return DefaultCountryCode
}

// TeamForDriver returns the team a driver code races for. ok is false for
// drivers outside the current line-up; such drivers are not listed.
func TeamForDriver(code string) (team string, ok bool) {
	team, ok = driverTeams[code]
	return team, ok
}

// TeamColors returns a copy of the team's color set, or DefaultColors.
func TeamColors(team string) models.ColorSet {
	c, ok := teamColors[team]
	if !ok {
		return DefaultColors()
	}
	if c.Secondary != nil {
		c.Secondary = strPtr(*c.Secondary)
	}
	return c
}

// TeamImage returns the team artwork path, or DefaultTeamImage.
func TeamImage(team string) string {
	if img, ok := teamImages[team]; ok {
		return img
	}
	return DefaultTeamImage
}

// DriverCodes returns the codes of every driver in the line-up.
func DriverCodes() []string {
	codes := make([]string, 0, len(driverTeams))
	for code := range driverTeams {
		codes = append(codes, code)
	}
	return codes
}

func strPtr(s string) *string {
	return &s
}
