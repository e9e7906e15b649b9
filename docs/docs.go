// Package docs holds the generated OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/v1/leads": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "List visible leads",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "Create a lead",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/leads/{id}/assign": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "Assign a lead to an agent",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/leads/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "Update lead status",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/content": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["content"],
                "summary": "List visible content",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["content"],
                "summary": "Save a content item",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/content/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["content"],
                "summary": "Update content status",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/generate/text": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["generate"],
                "summary": "Generate text",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/generate/image": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["generate"],
                "summary": "Generate an image",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/generate/audio": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["generate"],
                "summary": "Generate speech audio",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/generate/video": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["generate"],
                "summary": "Generate a video",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/business/onboarding": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["business"],
                "summary": "Complete business onboarding",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/business/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["business"],
                "summary": "Get the business profile",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/business/files": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["business"],
                "summary": "List business documents",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["business"],
                "summary": "Upload a business document",
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["business"],
                "summary": "Remove a business document",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/team": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["team"],
                "summary": "List team members",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/team/invite": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["team"],
                "summary": "Invite an agent",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/session/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["streams"],
                "summary": "Stream session state",
                "produces": ["text/event-stream"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/leads/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["streams"],
                "summary": "Stream visible leads",
                "produces": ["text/event-stream"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/content/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["streams"],
                "summary": "Stream visible content",
                "produces": ["text/event-stream"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/views/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["views"],
                "summary": "Resolve the current view",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/views/tabs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["views"],
                "summary": "List navigation tabs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/admin/businesses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List business summaries",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BizGenie API",
	Description:      "Multi-tenant backend for AI-assisted small-business operations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
