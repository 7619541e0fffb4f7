package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
)

// Códigos de máquina devolvidos pelo guard de acesso
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeForbidden       = "FORBIDDEN"
)

const defaultBaseURL = "http://localhost:8080"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Os campos padrão vêm de problems.Problem; Code, Errors e Meta são extensões.
type ErrorResponse struct {
	*problems.Problem
	Code   string            `json:"code,omitempty"`
	Errors []ValidationError `json:"errors,omitempty"`
	Meta   map[string]any    `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é a resposta padrão de operações sem corpo de retorno
type MessageResponse struct {
	Message string `json:"message"`
}

// Message traduz key e monta uma MessageResponse
func Message(c *gin.Context, key string) MessageResponse {
	return MessageResponse{Message: T(c, key)}
}

// NewErrorResponse cria uma resposta RFC 7807 com título e detalhe já resolvidos
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	problem := problems.NewStatusProblem(status).
		WithType(baseURL + problemType).
		WithTitle(title).
		WithInstance(c.Request.URL.Path)
	if detail != "" {
		problem = problem.WithDetail(detail)
	}

	return ErrorResponse{Problem: problem}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]any) ErrorResponse {
	detail := ""
	if detailKey != "" {
		detail = T(c, detailKey, params...)
	}
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, detail)
}

// Abort escreve a resposta de erro com content type application/problem+json
// e interrompe a cadeia de handlers
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BindingErrorResponseI18n converte o erro de ShouldBind*. Erros do validator
// viram uma lista por campo; JSON malformado vira bad request.
func BindingErrorResponseI18n(c *gin.Context, err error) ErrorResponse {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ValidationErrorResponseI18n(c, TranslateValidationErrors(c, validationErrors))
	}

	return NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.detail",
		http.StatusBadRequest,
	)
}

// TranslateValidationErrors traduz cada FieldError pela chave validation.<tag>
func TranslateValidationErrors(c *gin.Context, errs validator.ValidationErrors) []ValidationError {
	result := make([]ValidationError, 0, len(errs))
	for _, fe := range errs {
		params := map[string]any{"Field": fe.Field(), "Param": fe.Param()}

		key := "validation." + fe.Tag()
		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.invalid", params)
		}

		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		})
	}
	return result
}

// DomainValidationErrorResponseI18n cria um 400 cujo detalhe é o erro de domínio traduzido
func DomainValidationErrorResponseI18n(c *gin.Context, err error) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeValidation,
		"error.validation.title",
		err.Error(),
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]any) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, code, detailKey string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	)
	response.Code = code
	return response
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context, code, detailKey string) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeForbidden,
		"error.forbidden.title",
		detailKey,
		http.StatusForbidden,
	)
	response.Code = code
	return response
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		apperrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// UpstreamErrorResponseI18n cria um 500 para falhas de serviços externos.
// Quando message é vazio usa o detalhe genérico traduzido.
func UpstreamErrorResponseI18n(c *gin.Context, message string) ErrorResponse {
	if message == "" {
		return NewErrorResponseI18n(
			c,
			apperrors.ProblemTypeUpstream,
			"error.upstream.title",
			"error.upstream.detail",
			http.StatusInternalServerError,
		)
	}
	return NewErrorResponse(
		c,
		apperrors.ProblemTypeUpstream,
		T(c, "error.upstream.title"),
		http.StatusInternalServerError,
		message,
	)
}
