// Package docs holds the OpenAPI document served under /api/v1/swagger.
// Keep it in sync with the @Router annotations of the HTTP and ws controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog": {
            "get": {
                "description": "Genres, actors and directors offered by the form",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Option catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Catalog"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/form/ws": {
            "get": {
                "description": "Websocket carrying form actions from the browser and state events back",
                "tags": ["Form"],
                "summary": "Form session",
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "500": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/movies/options": {
            "get": {
                "description": "Looks up films titled exactly as the query and appends the already selected movies",
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Movie options",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "query", "in": "query", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Selected movies", "name": "selected", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http_options.OptionsResponseDTO"}},
                    "204": {"description": "Empty query, keep current options"},
                    "502": {"description": "Lookup service failed", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/ratings/rows": {
            "post": {
                "description": "Returns a rating input descriptor for every selected movie, in selection order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ratings"],
                "summary": "Rating rows",
                "parameters": [
                    {"description": "Selected movies and known ratings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_ratings.RowsRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http_ratings.RowsResponseDTO"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/submissions": {
            "post": {
                "description": "Validates the selected movies and ratings and renders a summary. Nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Submit preferences",
                "parameters": [
                    {"description": "Form values", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_submission.SubmitRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http_submission.SubmitResponseDTO"}},
                    "204": {"description": "Not submitted yet"},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}},
                    "422": {"description": "Validation message", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http_common.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "http_options.OptionsResponseDTO": {
            "type": "object",
            "properties": {"options": {"type": "array", "items": {"type": "string"}}}
        },
        "http_ratings.RowsRequestDTO": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"type": "string"}},
                "ratings": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "http_ratings.RowsResponseDTO": {
            "type": "object",
            "properties": {"rows": {"type": "array", "items": {"$ref": "#/definitions/model.RatingRow"}}}
        },
        "http_submission.SubmitRequestDTO": {
            "type": "object",
            "properties": {
                "submitted": {"type": "boolean"},
                "movies": {"type": "array", "items": {"type": "string"}},
                "ratings": {"type": "object", "additionalProperties": {"type": "number"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "actors": {"type": "array", "items": {"type": "string"}},
                "directors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http_submission.SubmitResponseDTO": {
            "type": "object",
            "properties": {
                "summary": {"$ref": "#/definitions/model.Summary"},
                "lines": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "model.Catalog": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}},
                "actors": {"type": "array", "items": {"type": "string"}},
                "directors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.RatingRow": {
            "type": "object",
            "properties": {
                "movie": {"type": "string"},
                "label": {"type": "string"},
                "min": {"type": "number"},
                "max": {"type": "number"},
                "step": {"type": "number"},
                "value": {"type": "number"}
            }
        },
        "model.Summary": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"type": "string"}},
                "ratings": {"type": "array", "items": {"type": "number"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "actors": {"type": "array", "items": {"type": "string"}},
                "directors": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Movie preference form API",
	Description:      "Movie search, rating rows and preference submissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
