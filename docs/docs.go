// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/lifelink/main.go
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Sign in with email and password", "consumes": ["application/json"], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new donor", "consumes": ["application/json"], "produces": ["application/json"],
            "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}},
        "/auth/demo": {"post": {"tags": ["auth"], "summary": "Demo sign-in by role", "consumes": ["application/json"], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Sign out", "security": [{"BearerAuth": []}],
            "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}}},
        "/session": {"get": {"tags": ["session"], "summary": "Current session", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/session/navigate": {"post": {"tags": ["session"], "summary": "Switch the current view", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}}}},
        "/views/current": {"get": {"tags": ["session"], "summary": "Content for the current view", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/directory/centers": {"get": {"tags": ["directory"], "summary": "Search donation centres", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "q", "in": "query"}],
            "responses": {"200": {"description": "OK"}}}},
        "/directory/doctors": {"get": {"tags": ["directory"], "summary": "Search doctors", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "specialty", "in": "query"}],
            "responses": {"200": {"description": "OK"}}}},
        "/directory/doctors/{id}/book": {"post": {"tags": ["directory"], "summary": "Book an appointment with a doctor", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
            "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}},
        "/directory/specialties": {"get": {"tags": ["directory"], "summary": "List doctor specialties", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}}}},
        "/directory/donors": {"get": {"tags": ["directory"], "summary": "Search the donor registry", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "blood_type", "in": "query"}, {"type": "string", "name": "location", "in": "query"}],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/admin/overview": {"get": {"tags": ["admin"], "summary": "System-wide totals", "security": [{"BearerAuth": []}], "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/chat/messages": {
            "get": {"tags": ["chat"], "summary": "Chat transcript", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "post": {"tags": ["chat"], "summary": "Ask the assistant", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}},
        "/preferences/theme": {
            "get": {"tags": ["preferences"], "summary": "Current theme", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "Sec-CH-Prefers-Color-Scheme", "in": "header"}],
                "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["preferences"], "summary": "Store the theme", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "503": {"description": "Service Unavailable"}}}},
        "/health": {"get": {"tags": ["ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["ops"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LifeLink API",
	Description:      "Blood-donation accounts, role-based views and the LifeLink assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
