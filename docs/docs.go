// Package docs holds the Swagger description served at /api/swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/relation/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Follow a user",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/server.FollowRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Follow"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/relation/{id}/": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Unfollow a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/relation/{id}/eliminar_seguidor/": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Remove a follower",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/relation/{id}/estado/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Whether the caller follows a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"siguiendo": {"type": "boolean"}}}}
                }
            }
        },
        "/relation/{id}/info/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Public profile card of a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProfileCard"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/relation/estado_mutuo/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Both follow directions between the caller and a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MutualStatus"}}
                }
            }
        },
        "/relation/seguimientos/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Users the caller follows",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UserSummary"}}}
                }
            }
        },
        "/relation/seguidores/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Users following the caller",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UserSummary"}}}
                }
            }
        },
        "/relation/contador/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["relation"],
                "summary": "Following and follower totals for the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelationCounts"}}
                }
            }
        },
        "/viaje_compartido/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Shared trips of one publisher",
                "parameters": [
                    {"type": "integer", "name": "publicado_por", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/viaje_compartido/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Shared trip detail",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/viaje_compartido/{tripId}/publicar/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Share a trip",
                "parameters": [
                    {"type": "integer", "name": "tripId", "in": "path", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/server.PublishRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SharedTrip"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/viaje_compartido/{tripId}/despublicar/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Stop sharing a trip",
                "parameters": [{"type": "integer", "name": "tripId", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/viaje_compartido/{tripId}/esta_publicado/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Whether a trip is shared",
                "parameters": [{"type": "integer", "name": "tripId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"publicado": {"type": "boolean"}}}}
                }
            }
        },
        "/viaje_compartido/{id}/like/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Like a shared trip",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LikeState"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/viaje_compartido/{id}/unlike/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["viaje_compartido"],
                "summary": "Remove a like from a shared trip",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LikeState"}}
                }
            }
        },
        "/viaje_compartido/siguiendo/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["feed"],
                "summary": "Shared trips from followed users",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}}}
                }
            }
        },
        "/viaje_compartido/populares/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["feed"],
                "summary": "Most liked shared trips of the last 30 days",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}}}
                }
            }
        },
        "/viaje_compartido/recientes/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["feed"],
                "summary": "Newest shared trips",
                "parameters": [
                    {"type": "integer", "name": "publicado_por", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "models.Follow": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "seguidor": {"type": "integer"},
                "seguido": {"type": "integer"},
                "creado_en": {"type": "string"}
            }
        },
        "models.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "foto_perfil": {"type": "string"}
            }
        },
        "models.RelationCounts": {
            "type": "object",
            "properties": {
                "siguiendo": {"type": "integer"},
                "seguidores": {"type": "integer"}
            }
        },
        "models.MutualStatus": {
            "type": "object",
            "properties": {
                "yo_sigo": {"type": "boolean"},
                "me_sigue": {"type": "boolean"}
            }
        },
        "models.ProfileCard": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "foto_perfil": {"type": "string"},
                "siguiendo": {"type": "integer"},
                "seguidores": {"type": "integer"}
            }
        },
        "models.TripSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "usuario": {"type": "integer"},
                "nombre": {"type": "string"},
                "destino": {"type": "string"},
                "fecha_inicio": {"type": "string"},
                "fecha_fin": {"type": "string"},
                "imagen_destacada": {"type": "string"}
            }
        },
        "models.SharedTrip": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "viaje_id": {"type": "integer"},
                "publicado_por": {"type": "integer"},
                "comentario": {"type": "string"},
                "fecha_publicacion": {"type": "string"},
                "likes_count": {"type": "integer"}
            }
        },
        "models.FeedItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "viaje": {"$ref": "#/definitions/models.TripSummary"},
                "comentario": {"type": "string"},
                "publicado_por": {"type": "integer"},
                "publicador": {"$ref": "#/definitions/models.UserSummary"},
                "fecha_publicacion": {"type": "string"},
                "likes_count": {"type": "integer"},
                "ya_dado_like": {"type": "boolean"}
            }
        },
        "models.LikeState": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "likes_count": {"type": "integer"},
                "ya_dado_like": {"type": "boolean"}
            }
        },
        "server.FollowRequest": {
            "type": "object",
            "properties": {
                "seguido": {"type": "integer"}
            }
        },
        "server.PublishRequest": {
            "type": "object",
            "properties": {
                "comentario": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "TravelShare API",
	Description:      "Social layer of the travel planner: follows, shared trips, likes and feeds",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
