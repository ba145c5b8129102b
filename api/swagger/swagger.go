package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Studio Catalog API",
        "description": "Read-only catalog of studio activities and teachers",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Activities", "description": "Class catalog and timetable"},
        {"name": "Teachers", "description": "Teacher directory"}
    ],
    "paths": {
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Class cards", "schema": {"$ref": "#/definitions/ClassCardList"}},
                    "502": {"description": "Query failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/highlighted": {
            "get": {
                "tags": ["Activities"],
                "summary": "List highlighted activities",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Class cards", "schema": {"$ref": "#/definitions/ClassCardList"}},
                    "502": {"description": "Query failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/export": {
            "get": {
                "tags": ["Activities"],
                "summary": "Download the class timetable",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Timetable document", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Export disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/{id}": {
            "get": {
                "tags": ["Activities"],
                "summary": "Get activity detail",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Activity", "schema": {"$ref": "#/definitions/Activity"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "view", "in": "query", "type": "string", "enum": ["detailed"], "description": "Include activity references"}
                ],
                "responses": {
                    "200": {"description": "Teacher cards", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Query failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/highlighted": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers leading highlighted activities",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Teacher cards", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Query failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher detail",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Professor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "days": {"type": "array", "items": {"type": "string"}},
                "professor": {"$ref": "#/definitions/Professor"}
            }
        },
        "Activity": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "short_desc": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "highlighted": {"type": "boolean"},
                "difficulty_level": {"type": "integer", "minimum": 1, "maximum": 3},
                "icon_id": {"type": "integer", "minimum": 1, "maximum": 6},
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/Schedule"}}
            }
        },
        "ClassCard": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "short_desc": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "colorVariant": {"type": "string", "enum": ["primary", "secondary", "third"]},
                "difficulty_level": {"type": "integer"},
                "icon_id": {"type": "integer"},
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/Schedule"}}
            }
        },
        "ClassCardList": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/ClassCard"}},
                "meta": {"type": "object"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
