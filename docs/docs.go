// Package docs registra no swag a especificação OpenAPI da API, mantida à mão
// no mesmo formato que o swag init geraria.
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
        "/activity-logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["activity-logs"],
                "summary": "Últimas entradas do log de auditoria",
                "parameters": [
                    {"type": "integer", "description": "Máximo de itens (max 200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ActivityLogResponse"}}}
                }
            }
        },
        "/auth/app/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login do aplicativo (paciente ou dentista)",
                "parameters": [
                    {"description": "Credenciais", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AppLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AppLoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/app/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Cadastro pelo aplicativo",
                "parameters": [
                    {"description": "Perfil e senha", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/change-password": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Troca a senha",
                "parameters": [
                    {"description": "Senha atual e nova", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Envia o email de redefinição",
                "parameters": [
                    {"description": "Email", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ForgotPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Encerra a sessão do aplicativo",
                "parameters": [
                    {"description": "Refresh token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/refresh-token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Renova o access token",
                "parameters": [
                    {"description": "Refresh token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccessTokenResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Redefine a senha",
                "parameters": [
                    {"description": "Token e nova senha", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ResetPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/website/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login do painel web (somente admin)",
                "parameters": [
                    {"description": "Credenciais", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WebLoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/buckets/model/{record_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "URLs assinadas do modelo de um prontuário",
                "parameters": [
                    {"type": "string", "description": "ID do prontuário", "name": "record_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ModelURLsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/buckets/upload/beforemodel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "Envia o modelo 3D \"antes\" de um prontuário",
                "parameters": [
                    {"type": "string", "description": "ID do prontuário", "name": "record_id", "in": "formData", "required": true},
                    {"type": "file", "description": "Modelo glTF", "name": "gltf", "in": "formData", "required": true},
                    {"type": "file", "description": "Buffer binário do glTF", "name": "bin", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DentalModelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/notifications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Notificações do usuário",
                "parameters": [
                    {"type": "integer", "description": "Máximo de itens", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.NotificationResponse"}}}
                }
            }
        },
        "/notifications/{id}/read": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Marca notificação como lida",
                "parameters": [
                    {"type": "string", "description": "ID da notificação", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Lista serviços",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ServiceResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Cria um serviço",
                "parameters": [
                    {"description": "Serviço", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ServiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/services/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Lista categorias",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Cria uma categoria",
                "parameters": [
                    {"description": "Categoria", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/services/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Busca uma categoria",
                "parameters": [
                    {"type": "string", "description": "ID da categoria", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Renomeia uma categoria",
                "parameters": [
                    {"type": "string", "description": "ID da categoria", "name": "id", "in": "path", "required": true},
                    {"description": "Categoria", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Remove uma categoria (soft delete)",
                "parameters": [
                    {"type": "string", "description": "ID da categoria", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/services/grouped": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Lista serviços agrupados por categoria",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ServiceGroupResponse"}}}
                }
            }
        },
        "/services/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Busca um serviço",
                "parameters": [
                    {"type": "string", "description": "ID do serviço", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Atualiza um serviço",
                "parameters": [
                    {"type": "string", "description": "ID do serviço", "name": "id", "in": "path", "required": true},
                    {"description": "Serviço", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Remove um serviço (soft delete)",
                "parameters": [
                    {"type": "string", "description": "ID do serviço", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Cria um usuário",
                "parameters": [
                    {"description": "Perfil e senha", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista usuários ativos",
                "parameters": [
                    {"type": "string", "description": "admin, patient ou dentist", "name": "usertype", "in": "query"},
                    {"type": "integer", "description": "Página (começa em 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Itens por página (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserListResponse"}}
                }
            }
        },
        "/users/delete/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Remove um usuário (soft delete)",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/edit/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Edita um usuário",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true},
                    {"description": "Perfil", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EditUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Busca um usuário",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AccessTokenResponse": {
            "type": "object",
            "properties": {"accessToken": {"type": "string"}}
        },
        "dto.ActivityLogResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "0"},
                "admin_id": {"type": "string"},
                "action": {"type": "string"},
                "table_name": {"type": "string"},
                "record_id": {"type": "string"},
                "description": {"type": "string"},
                "undo_data": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "dto.AddUserRequest": {
            "type": "object",
            "required": ["email", "firstname", "lastname", "password", "username", "usertype"],
            "properties": {
                "username": {"type": "string", "maxLength": 30, "minLength": 3},
                "email": {"type": "string"},
                "password": {"type": "string", "maxLength": 72, "minLength": 6},
                "usertype": {"type": "string", "enum": ["admin", "patient", "dentist"]},
                "firstname": {"type": "string", "maxLength": 100},
                "lastname": {"type": "string", "maxLength": 100},
                "contact_number": {"type": "string", "maxLength": 30},
                "address": {"type": "string", "maxLength": 255}
            }
        },
        "dto.AppLoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "fcmToken": {"type": "string"}
            }
        },
        "dto.AppLoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "refreshToken": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.CategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 150}}
        },
        "dto.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "is_deleted": {"type": "boolean"},
                "deleted_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.ChangePasswordRequest": {
            "type": "object",
            "required": ["currentPassword", "newPassword", "userId"],
            "properties": {
                "userId": {"type": "string"},
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string", "maxLength": 72, "minLength": 6}
            }
        },
        "dto.DentalModelResponse": {
            "type": "object",
            "properties": {
                "record_id": {"type": "string"},
                "before_model_url": {"type": "string"},
                "before_model_bin_url": {"type": "string"},
                "before_uploaded_at": {"type": "string"}
            }
        },
        "dto.EditUserRequest": {
            "type": "object",
            "required": ["email", "firstname", "lastname", "username", "usertype"],
            "properties": {
                "username": {"type": "string", "maxLength": 30, "minLength": 3},
                "email": {"type": "string"},
                "usertype": {"type": "string", "enum": ["admin", "patient", "dentist"]},
                "firstname": {"type": "string", "maxLength": 100},
                "lastname": {"type": "string", "maxLength": 100},
                "contact_number": {"type": "string", "maxLength": 30},
                "address": {"type": "string", "maxLength": 255}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "code": {"type": "string", "enum": ["UNAUTHENTICATED", "INVALID_TOKEN", "FORBIDDEN"]},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationError"}},
                "meta": {"type": "object"}
            }
        },
        "dto.ForgotPasswordRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.ModelURLsResponse": {
            "type": "object",
            "properties": {
                "record_id": {"type": "string"},
                "gltf_url": {"type": "string"},
                "bin_url": {"type": "string"},
                "uploaded_at": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "dto.NotificationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "type": {"type": "string"},
                "is_read": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "dto.Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {"refreshToken": {"type": "string"}}
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "firstname", "lastname", "password", "username", "usertype"],
            "properties": {
                "username": {"type": "string", "maxLength": 30, "minLength": 3},
                "email": {"type": "string"},
                "password": {"type": "string", "maxLength": 72, "minLength": 6},
                "usertype": {"type": "string", "enum": ["patient", "dentist"]},
                "firstname": {"type": "string", "maxLength": 100},
                "lastname": {"type": "string", "maxLength": 100},
                "contact_number": {"type": "string", "maxLength": 30},
                "address": {"type": "string", "maxLength": 255}
            }
        },
        "dto.RegisterResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.ResetPasswordRequest": {
            "type": "object",
            "required": ["accessToken", "newPassword"],
            "properties": {
                "accessToken": {"type": "string"},
                "newPassword": {"type": "string", "maxLength": 72, "minLength": 6}
            }
        },
        "dto.ServiceGroupResponse": {
            "type": "object",
            "properties": {
                "category_id": {"type": "string"},
                "category_name": {"type": "string"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/dto.ServiceResponse"}}
            }
        },
        "dto.ServiceRequest": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string", "maxLength": 150},
                "description": {"type": "string", "maxLength": 2000},
                "price": {"type": "number", "minimum": 0},
                "allow_installment": {"type": "boolean"},
                "installment_times": {"type": "integer", "minimum": 2},
                "installment_interval": {"type": "string", "enum": ["weekly", "monthly", "custom"]},
                "custom_interval_days": {"type": "integer", "minimum": 1},
                "category_id": {"type": "string"}
            }
        },
        "dto.ServiceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "allow_installment": {"type": "boolean"},
                "installment_times": {"type": "integer"},
                "installment_interval": {"type": "string"},
                "custom_interval_days": {"type": "integer"},
                "category": {"$ref": "#/definitions/dto.CategoryResponse"},
                "is_deleted": {"type": "boolean"},
                "deleted_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.SessionUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "usertype": {"type": "string"}
            }
        },
        "dto.UserListResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}},
                "pagination": {"$ref": "#/definitions/dto.Pagination"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "usertype": {"type": "string"},
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "contact_number": {"type": "string"},
                "address": {"type": "string"},
                "is_deleted": {"type": "boolean"},
                "deleted_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "dto.WebLoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.SessionUser"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer access token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo expõe os metadados da documentação; o router ajusta o host
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dental Clinic API",
	Description:      "Backend-for-frontend do painel web e do aplicativo da clínica odontológica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
