package http

import (
	errs "errors"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
)

var (
	validationErrors = []error{
		errors.ErrInvalidEmail,
		errors.ErrInvalidUsername,
		errors.ErrInvalidRole,
		errors.ErrInvalidInstallment,
		errors.ErrInvalidPrice,
		errors.ErrMissingFile,
		errors.ErrSamePassword,
		errors.ErrInvalidRecordID,
		errors.ErrInvalidName,
	}

	notFoundErrors = []error{
		errors.ErrUserNotFound,
		errors.ErrServiceNotFound,
		errors.ErrCategoryNotFound,
		errors.ErrModelNotFound,
		errors.ErrNotificationNotFound,
		errors.ErrEmailNotRegistered,
	}

	conflictErrors = []error{
		errors.ErrUsernameAlreadyExists,
		errors.ErrEmailAlreadyExists,
		errors.ErrServiceNameAlreadyExists,
		errors.ErrCategoryNameAlreadyExists,
	}

	// Erros de autenticação (401) e autorização (403) com o code do guard, quando houver
	authErrors = []struct {
		err       error
		code      string
		forbidden bool
	}{
		{err: errors.ErrInvalidCredentials},
		{err: errors.ErrInvalidToken, code: dto.CodeInvalidToken},
		{err: errors.ErrUnauthorized, code: dto.CodeUnauthenticated},
		{err: errors.ErrForbidden, code: dto.CodeForbidden, forbidden: true},
		{err: errors.ErrRoleNotAllowed, forbidden: true},
		{err: errors.ErrInvalidRefreshToken, forbidden: true},
	}
)

// respondError traduz um erro de serviço em problem details.
// Falhas upstream só expõem a mensagem original fora do modo release.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if sentinel, ok := matchAny(err, validationErrors); ok {
		dto.Abort(c, dto.DomainValidationErrorResponseI18n(c, sentinel))
		return
	}

	if sentinel, ok := matchAny(err, notFoundErrors); ok {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, sentinel.Error()))
		return
	}

	if sentinel, ok := matchAny(err, conflictErrors); ok {
		dto.Abort(c, dto.ConflictErrorResponseI18n(c, sentinel.Error()))
		return
	}

	for _, rule := range authErrors {
		if !errs.Is(err, rule.err) {
			continue
		}
		if rule.forbidden {
			dto.Abort(c, dto.ForbiddenErrorResponseI18n(c, rule.code, rule.err.Error()))
		} else {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, rule.code, rule.err.Error()))
		}
		return
	}

	logger.Error("request failed",
		"path", c.FullPath(),
		"request_id", c.GetString(dto.RequestIDContextKey),
		"error", err,
	)

	if errors.IsUpstream(err) {
		message := ""
		if gin.Mode() != gin.ReleaseMode {
			message = err.Error()
		}
		dto.Abort(c, dto.UpstreamErrorResponseI18n(c, message))
		return
	}

	dto.Abort(c, dto.InternalErrorResponseI18n(c))
}

// matchAny devolve o sentinel da lista que err embrulha
func matchAny(err error, sentinels []error) (error, bool) {
	for _, sentinel := range sentinels {
		if errs.Is(err, sentinel) {
			return sentinel, true
		}
	}
	return nil, false
}

// respondBindingError responde 400 para corpo, query ou form inválidos
func respondBindingError(c *gin.Context, err error) {
	dto.Abort(c, dto.BindingErrorResponseI18n(c, err))
}
