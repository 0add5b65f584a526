// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/deltaf1"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns a fixed message confirming the API is running.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RootMessage"}}
                }
            }
        },
        "/api/races": {
            "get": {
                "description": "Returns every race of the season in round order. Defaults to the current season.",
                "produces": ["application/json"],
                "tags": ["Races"],
                "summary": "List races",
                "parameters": [
                    {"type": "integer", "description": "Season, defaults to the current one", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Race"}}},
                    "400": {"description": "Year is not an integer", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "500": {"description": "Upstream data could not be processed", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "503": {"description": "Statistics API unavailable", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/api/races/upto": {
            "get": {
                "description": "Returns the completed races of the current season plus the next scheduled race, most recent first.",
                "produces": ["application/json"],
                "tags": ["Races"],
                "summary": "Races up to the next one",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Race"}}},
                    "500": {"description": "Upstream data could not be processed", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "503": {"description": "Statistics API unavailable", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/api/race/{round}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Races"],
                "summary": "Get race by round",
                "parameters": [
                    {"type": "integer", "description": "Round number", "name": "round", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Race"}},
                    "400": {"description": "Round is not an integer", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "404": {"description": "Race not found", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "503": {"description": "Statistics API unavailable", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/api/drivers": {
            "get": {
                "description": "Returns the drivers of the season from the configured source. The store source ignores year.",
                "produces": ["application/json"],
                "tags": ["Drivers"],
                "summary": "List drivers",
                "parameters": [
                    {"type": "integer", "description": "Season, defaults to the current one", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Driver"}}},
                    "400": {"description": "Year is not an integer", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "500": {"description": "Driver data could not be processed", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "503": {"description": "Statistics API unavailable", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/api/drivers/images": {
            "get": {
                "description": "Returns a map of driver code to image URL. Drivers without an image are omitted.",
                "produces": ["application/json"],
                "tags": ["Drivers"],
                "summary": "Driver images",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Driver data could not be processed", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "503": {"description": "Statistics API unavailable", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/api/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthStatus"}}
                }
            }
        },
        "/api/health/ready": {
            "get": {
                "description": "Pings the driver store (store source only) and reports the statistics API circuit breaker state.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/models.HealthStatus"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/models.HealthStatus"}}
                }
            }
        }
    },
    "definitions": {
        "models.ColorSet": {
            "type": "object",
            "properties": {
                "accent": {"type": "string", "example": "#000000"},
                "main": {"type": "string", "example": "#DE6A10"},
                "secondary": {"type": "string", "example": "#FF8700"}
            }
        },
        "models.Driver": {
            "type": "object",
            "properties": {
                "colors": {"$ref": "#/definitions/models.ColorSet"},
                "cost": {"type": "number", "example": 30},
                "deltaCost": {"type": "number", "example": 0.4},
                "driverCode": {"type": "string", "example": "NOR"},
                "driverImage": {"type": "string"},
                "driverName": {"type": "string", "example": "Lando Norris"},
                "teamImage": {"type": "string", "example": "src/assets/mclaren.avif"},
                "teamName": {"type": "string", "example": "McLaren Racing"}
            }
        },
        "models.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "NOT_FOUND"},
                "detail": {"type": "string", "example": "Race not found"},
                "request_id": {"type": "string"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "driver_source": {"type": "string", "example": "api"},
                "status": {"type": "string", "example": "ok"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "models.Race": {
            "type": "object",
            "properties": {
                "circuit": {"type": "string", "example": "Miami International Autodrome"},
                "country": {"type": "string", "example": "USA"},
                "countryCode": {"type": "string", "example": "us"},
                "date": {"type": "string", "example": "2025-05-04T20:00:00Z"},
                "id": {"type": "integer", "example": 5},
                "name": {"type": "string", "example": "Miami Grand Prix"},
                "round": {"type": "integer", "example": 5},
                "year": {"type": "integer", "example": 2025}
            }
        },
        "models.RootMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Delta F1 API is running!"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Delta F1 API",
	Description:      "Formula 1 race calendar and fantasy driver pricing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
