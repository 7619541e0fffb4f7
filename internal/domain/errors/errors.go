package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound              = errors.New("error.user_not_found")
	ErrServiceNotFound           = errors.New("error.service_not_found")
	ErrCategoryNotFound          = errors.New("error.category_not_found")
	ErrModelNotFound             = errors.New("error.model_not_found")
	ErrNotificationNotFound      = errors.New("error.notification_not_found")
	ErrEmailNotRegistered        = errors.New("error.email_not_registered")
	ErrUsernameAlreadyExists     = errors.New("error.username_already_exists")
	ErrEmailAlreadyExists        = errors.New("error.email_already_exists")
	ErrServiceNameAlreadyExists  = errors.New("error.service_name_already_exists")
	ErrCategoryNameAlreadyExists = errors.New("error.category_name_already_exists")
	ErrInvalidCredentials        = errors.New("error.invalid_credentials")
	ErrInvalidRefreshToken       = errors.New("error.invalid_refresh_token")
	ErrUnauthorized              = errors.New("error.unauthorized")
	ErrInvalidToken              = errors.New("error.invalid_token")
	ErrForbidden                 = errors.New("error.forbidden")
	ErrRoleNotAllowed            = errors.New("error.role_not_allowed")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
var (
	ErrInvalidEmail       = errors.New("error.invalid_email")
	ErrInvalidUsername    = errors.New("error.invalid_username")
	ErrInvalidRole        = errors.New("error.invalid_role")
	ErrInvalidInstallment = errors.New("error.invalid_installment")
	ErrInvalidPrice       = errors.New("error.invalid_price")
	ErrMissingFile        = errors.New("error.missing_file")
	ErrSamePassword       = errors.New("error.same_password")
	ErrInvalidRecordID    = errors.New("error.invalid_record_id")
	ErrInvalidName        = errors.New("error.invalid_name")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeUpstream     = "/problems/upstream-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Upstream embrulha uma falha de um serviço externo (banco, auth, storage).
// op descreve a operação que falhou, ex: "auth.create_user".
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DomainError{
		Type:    ProblemTypeUpstream,
		Title:   "error.upstream.title",
		Message: op,
		Err:     err,
	}
}

// IsUpstream verifica se o erro veio de um serviço externo
func IsUpstream(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == ProblemTypeUpstream
}
