package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Records Views API",
        "description": "Read-only detail views for classes, departments, subjects and faculty profiles",
        "version": "0.2.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Views", "description": "Detail pages composed from academic records"},
        {"name": "Exports", "description": "CSV/PDF exports of related tables"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Dependencies unavailable"}
                }
            }
        },
        "/api/v1/views/classes/{id}": {
            "get": {
                "tags": ["Views"],
                "summary": "Class detail view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Ready page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "304": {"description": "Not modified"},
                    "404": {"description": "Class details not found.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Failed to load class details.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/departments/{id}": {
            "get": {
                "tags": ["Views"],
                "summary": "Department detail view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Ready page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "304": {"description": "Not modified"},
                    "404": {"description": "Department details not found.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Failed to load department details.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/subjects/{id}": {
            "get": {
                "tags": ["Views"],
                "summary": "Subject detail view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Ready page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "304": {"description": "Not modified"},
                    "404": {"description": "Subject details not found.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Failed to load subject details.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/faculty/{id}": {
            "get": {
                "tags": ["Views"],
                "summary": "Faculty profile view",
                "description": "Teacher, student or bare profile depending on the shape of the user's record. Admins may read any profile; other users only their own.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Ready page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "304": {"description": "Not modified"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Faculty details not found.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Failed to load faculty details.", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/departments/{id}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export a department table",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "table", "in": "query", "type": "string", "enum": ["subjects", "classes"]}
                ],
                "responses": {
                    "200": {"description": "Document"},
                    "400": {"description": "Invalid export request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/subjects/{id}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the classes of a subject",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document"},
                    "400": {"description": "Invalid export request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/faculty/{id}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the related table of a faculty profile",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document"},
                    "400": {"description": "Profile has no related table", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/cache/{resource}": {
            "delete": {
                "tags": ["Views"],
                "summary": "Drop every cached page of a resource (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string", "enum": ["classes", "departments", "subjects", "faculty"]}
                ],
                "responses": {
                    "204": {"description": "Invalidated"},
                    "400": {"description": "Unknown resource", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/cache/{resource}/{id}": {
            "delete": {
                "tags": ["Views"],
                "summary": "Drop the cached page of one record (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string", "enum": ["classes", "departments", "subjects", "faculty"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Invalidated"},
                    "400": {"description": "Unknown resource or invalid id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "PageHeader": {
            "type": "object",
            "properties": {
                "resource": {"type": "string"},
                "title": {"type": "string"},
                "state": {"type": "string", "enum": ["ready", "loading", "error", "not_found"]},
                "message": {"type": "string"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/PageHeader"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {
                    "type": "object",
                    "properties": {
                        "cache_hit": {"type": "boolean"},
                        "processing_time_ms": {"type": "integer"},
                        "state": {"type": "string"}
                    }
                }
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
