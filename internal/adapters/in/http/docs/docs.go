// Package docs registers the Swagger document served under /swagger/.
// Keep it in step with the godoc annotations on the handlers.
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
        "/api/v1/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Menu with prices, extras and the delivery fee",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tools.MenuPayload"}}
                }
            }
        },
        "/api/v1/tools": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tools"],
                "summary": "Declarations of the tools the dialogue model may call",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/tools.Declaration"}}}
                }
            }
        },
        "/api/v1/tools/{name}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tools"],
                "summary": "Call a tool with JSON arguments",
                "parameters": [
                    {"type": "string", "description": "Tool name", "name": "name", "in": "path", "required": true},
                    {"description": "Tool arguments", "name": "arguments", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tools.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/tools.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/tools.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/tools.Result"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/tools.Result"}}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send one message to PizzaBot",
                "parameters": [
                    {"description": "Message and optional session", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Most recent orders, newest first",
                "parameters": [
                    {"type": "string", "description": "Only orders in this status", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Maximum rows (1-500, default 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/orders/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["admin"],
                "summary": "Order list as an Excel workbook",
                "parameters": [
                    {"type": "string", "description": "Only orders in this status", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Maximum rows (1-500, default 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/admin/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Order with items, status history and totals",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tools.OrderPayload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["admin"],
                "summary": "Delete an order with its items and history",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/orders/{orderId}/status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Move an order along its status flow",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "New status and optional message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.StatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tools.OrderPayload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.ChatRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.ChatResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "reply": {"type": "string"},
                "order_id": {"type": "string"}
            }
        },
        "http.StatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.OrderSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_name": {"type": "string"},
                "status": {"type": "string"},
                "delivery_type": {"type": "string"},
                "address": {"type": "string"},
                "item_count": {"type": "integer"},
                "subtotal": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "http.OrderList": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummary"}}
            }
        },
        "tools.Declaration": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "parameters": {"type": "object"}
            }
        },
        "tools.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "tools.Result": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/tools.Error"}
            }
        },
        "tools.TotalsPayload": {
            "type": "object",
            "properties": {
                "subtotal": {"type": "integer"},
                "delivery_fee": {"type": "integer"},
                "tax": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "tools.OrderPayload": {
            "type": "object",
            "properties": {
                "order": {"type": "object"},
                "items": {"type": "array", "items": {"type": "object"}},
                "updates": {"type": "array", "items": {"type": "object"}},
                "totals": {"$ref": "#/definitions/tools.TotalsPayload"}
            }
        },
        "tools.MenuPayload": {
            "type": "object",
            "properties": {
                "menu_text": {"type": "string"},
                "currency": {"type": "string"},
                "delivery_fee": {"type": "integer"},
                "tax_percent": {"type": "number"},
                "pizzas": {"type": "array", "items": {"type": "object"}},
                "extras": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds the document metadata. Host and Schemes may be set at startup.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PizzaBot API",
	Description:      "Pizza ordering tools, chat with the ordering assistant and order administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
