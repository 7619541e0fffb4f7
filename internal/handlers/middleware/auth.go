package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
)

// IdentityContextKey guarda a identidade do access token verificado
const IdentityContextKey = "identity"

// Authenticate exige um header "Authorization: Bearer <token>" válido.
// Não faz I/O: a identidade vem inteira do token assinado.
func Authenticate(issuer ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, dto.CodeUnauthenticated, "error.unauthorized"))
			return
		}

		identity, err := issuer.VerifyAccessToken(token)
		if err != nil {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, dto.CodeInvalidToken, "error.invalid_token"))
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireRole barra com 403 quem não tem um dos papéis informados.
// Deve rodar depois de Authenticate.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, dto.CodeUnauthenticated, "error.unauthorized"))
			return
		}

		if !identity.Role.In(roles...) {
			dto.Abort(c, dto.ForbiddenErrorResponseI18n(c, dto.CodeForbidden, "error.forbidden"))
			return
		}

		c.Next()
	}
}

// GetIdentity retorna a identidade gravada por Authenticate
func GetIdentity(c *gin.Context) (*ports.Identity, bool) {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*ports.Identity)
	return identity, ok && identity != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
