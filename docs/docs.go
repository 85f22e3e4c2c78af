// Package docs registers the OpenAPI document served on /swagger.
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
        "/api/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Answer a chat message",
                "parameters": [
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.respondReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.respondResp"}},
                    "400": {"description": "Message cannot be empty", "schema": {"$ref": "#/definitions/chat.errorResp"}},
                    "429": {"description": "Too Many Requests"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/chat.errorResp"}}
                }
            }
        },
        "/api/users/send-verification-otp": {
            "post": {"tags": ["Users"], "summary": "Start OTP signup", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request or user exists"}}}
        },
        "/api/users/verify-signup-otp": {
            "post": {"tags": ["Users"], "summary": "Finish OTP signup", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid or expired session, invalid or expired OTP"}}}
        },
        "/api/users/register": {
            "post": {"tags": ["Users"], "summary": "Register with an emailed verification code", "responses": {"201": {"description": "Created"}}}
        },
        "/api/users/verify-email": {
            "post": {"tags": ["Users"], "summary": "Verify email with code", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid or expired verification code"}}}
        },
        "/api/users/login": {
            "post": {"tags": ["Users"], "summary": "Login with email and password", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid credentials"}, "401": {"description": "Email not verified"}}}
        },
        "/api/users/google-signup": {
            "post": {"tags": ["Users"], "summary": "Register a Google account", "responses": {"200": {"description": "Already registered"}, "201": {"description": "Created"}}}
        },
        "/api/users/google-auth": {
            "post": {"tags": ["Users"], "summary": "Sign in with Google", "responses": {"200": {"description": "OK"}}}
        },
        "/api/profile/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Get my profile", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "User not found"}}}
        },
        "/api/profile": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Update my profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Delete my account", "responses": {"200": {"description": "OK"}}}
        },
        "/api/profile/favorites": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "List my favorite menu items", "responses": {"200": {"description": "OK"}}}
        },
        "/api/profile/favorites/{itemId}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Save a menu item", "parameters": [{"type": "string", "name": "itemId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Menu item not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Remove a saved menu item", "parameters": [{"type": "string", "name": "itemId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/menu/venues": {
            "get": {"tags": ["Menu"], "summary": "List venues", "responses": {"200": {"description": "OK"}}}
        },
        "/api/menu": {
            "get": {
                "tags": ["Menu"], "summary": "List menu items",
                "parameters": [
                    {"type": "string", "name": "cafeId", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {"security": [{"BearerAuth": []}], "tags": ["Menu"], "summary": "Create menu item", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/api/menu/{id}": {
            "get": {"tags": ["Menu"], "summary": "Get menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Menu"], "summary": "Update menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Menu"], "summary": "Delete menu item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/cafes/{cafeId}/slots": {
            "get": {
                "tags": ["Bookings"], "summary": "List open slots",
                "parameters": [
                    {"type": "string", "name": "cafeId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Missing, malformed or past date"}}
            }
        },
        "/api/cafes/{cafeId}/bookings": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Bookings"], "summary": "Book a slot", "parameters": [{"type": "string", "name": "cafeId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Slot is full"}}}
        },
        "/api/bookings/mine": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Bookings"], "summary": "List my bookings", "responses": {"200": {"description": "OK"}}}
        },
        "/api/health": {
            "get": {"tags": ["Health"], "summary": "Chat Health Check", "responses": {"200": {"description": "OK"}}}
        },
        "/health": {
            "get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "A dependency is unreachable"}}}
        },
        "/live": {
            "get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    },
    "definitions": {
        "chat.respondReq": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "chat.respondResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "action": {"type": "string", "enum": ["navigate"]},
                "cafeId": {"type": "string"},
                "requiresAuth": {"type": "boolean"}
            }
        },
        "chat.errorResp": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Tastoria API",
	Description:      "Restaurant menus, bookings, accounts and the chat assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
