// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

/*
Package models defines the JSON shapes served by the API.

  - Race: one calendar entry, as returned by /api/races
  - Driver and ColorSet: driver listing with fantasy pricing and team colors
  - RootMessage, ErrorBody, HealthStatus: service responses

The upstream statistics API payloads live in the ergast subpackage and are
converted to these types by the transform package.
*/
package models
