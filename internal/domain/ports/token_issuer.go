package ports

import (
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// Identity é a identidade extraída de um access token verificado
type Identity struct {
	UserID   string
	Username string
	Role     entities.Role
}

// TokenIssuer emite e verifica access tokens e gera refresh tokens opacos
type TokenIssuer interface {
	IssueAccessToken(identity Identity, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (*Identity, error)
	IssueRefreshToken() (string, error)
}
