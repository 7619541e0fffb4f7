package repositories

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// RefreshTokenRepository persiste os refresh tokens emitidos no login do app
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entities.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error)
	// DeleteByToken é idempotente: token inexistente não é erro
	DeleteByToken(ctx context.Context, token string) error
}
