// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// @title Delta F1 API
// @version 1.0.0
// @description Formula 1 race calendar and fantasy driver pricing.
// @description
// @description Race data comes from the jolpi.ca ergast API on every request. Drivers come
// @description either from the same API or from a curated store table, chosen at startup.
// @description
// @description ## Error Responses
// @description
// @description Errors return {"detail": "...", "code": "...", "request_id": "..."} with
// @description 400 (VALIDATION_ERROR), 404 (NOT_FOUND), 500 (DATA_PROCESSING) or 503 (UPSTREAM_UNAVAILABLE).
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/deltaf1
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
package main
