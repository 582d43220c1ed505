// Package docs holds the swagger document served at /swagger. Regenerate with
// `go generate ./cmd/app` after changing handler annotations.
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
        "/health": {"get": {"tags": ["Health"], "summary": "Liveness check", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries": {"get": {"tags": ["Monasteries"], "summary": "List monasteries", "produces": ["application/json"], "parameters": [
            {"type": "string", "name": "category", "in": "query"},
            {"type": "string", "name": "region", "in": "query"},
            {"type": "string", "name": "search", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/filter": {"post": {"tags": ["Monasteries"], "summary": "Apply a filter to the map", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [
            {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/filter.Criteria"}}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/current": {"get": {"tags": ["Monasteries"], "summary": "Current map state", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/map": {"get": {"tags": ["Monasteries"], "summary": "Map markers as GeoJSON", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/monasteries/filters": {"get": {"tags": ["Monasteries"], "summary": "Selector values", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/detail": {"get": {"tags": ["Monasteries"], "summary": "Monastery detail", "produces": ["application/json"], "parameters": [
            {"type": "string", "name": "name", "in": "query", "required": true}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/nearby": {"get": {"tags": ["Monasteries"], "summary": "Monasteries near a point", "produces": ["application/json"], "parameters": [
            {"type": "number", "name": "lat", "in": "query", "required": true},
            {"type": "number", "name": "lon", "in": "query", "required": true},
            {"type": "number", "default": 20, "name": "radius_km", "in": "query"}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/monasteries/markers/{id}": {"get": {"tags": ["Monasteries"], "summary": "Resolve a map marker", "produces": ["application/json"], "parameters": [
            {"type": "integer", "name": "id", "in": "path", "required": true}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/slides": {"get": {"tags": ["Slideshow"], "summary": "Hero slideshow state", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/slides/next": {"post": {"tags": ["Slideshow"], "summary": "Advance the slideshow", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/slides/previous": {"post": {"tags": ["Slideshow"], "summary": "Step the slideshow back", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/slides/show": {"post": {"tags": ["Slideshow"], "summary": "Jump to a slide", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [
            {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request_models.SlideRequest"}}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/auth/signup": {"post": {"tags": ["Accounts"], "summary": "Register a new account", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [
            {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request_models.SignUpRequest"}}
        ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/auth/login": {"post": {"tags": ["Accounts"], "summary": "Login to an account", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [
            {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request_models.LoginRequest"}}
        ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["Accounts"], "summary": "Logout", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/accounts": {"get": {"security": [{"BearerAuth": []}], "tags": ["Accounts"], "summary": "Get all accounts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}},
        "/api/photos": {
            "get": {"tags": ["Photos"], "summary": "List gallery photos", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Photos"], "summary": "Upload a gallery photo", "consumes": ["multipart/form-data"], "produces": ["application/json"], "parameters": [
                {"type": "file", "name": "photo", "in": "formData", "required": true}
            ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}
        },
        "/api/contact": {
            "post": {"tags": ["Contact"], "summary": "Send a contact message", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [
                {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request_models.ContactRequest"}}
            ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["Contact"], "summary": "List contact messages", "produces": ["application/json"], "parameters": [
                {"type": "integer", "default": 1, "name": "page", "in": "query"},
                {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "name": "pageSize", "in": "query"}
            ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}}
        }
    },
    "definitions": {
        "utils.APIResponse": {"type": "object", "properties": {
            "status": {"type": "string"}, "code": {"type": "integer"}, "message": {"type": "string"}, "trace_id": {"type": "string"}, "data": {}
        }},
        "filter.Criteria": {"type": "object", "properties": {
            "category": {"type": "string"}, "region": {"type": "string"}, "search": {"type": "string"}
        }},
        "request_models.SlideRequest": {"type": "object", "properties": {"index": {"type": "integer", "minimum": 0}}},
        "request_models.SignUpRequest": {"type": "object", "required": ["username", "password"], "properties": {
            "username": {"type": "string", "minLength": 3, "maxLength": 50}, "password": {"type": "string", "minLength": 6}
        }},
        "request_models.LoginRequest": {"type": "object", "required": ["username", "password"], "properties": {
            "username": {"type": "string"}, "password": {"type": "string"}
        }},
        "request_models.ContactRequest": {"type": "object", "required": ["name", "email", "message"], "properties": {
            "name": {"type": "string", "maxLength": 100}, "email": {"type": "string"}, "message": {"type": "string", "maxLength": 5000}
        }}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Monasteries of Sikkim API",
	Description:      "Monastery explorer, gallery, contact and account endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
