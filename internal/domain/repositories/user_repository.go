package repositories

import (
	"context"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de perfis de usuários.
// Buscas "Active" ignoram registros com is_deleted = true; FindByID não.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindActiveByID(ctx context.Context, id string) (*entities.User, error)
	FindActiveByUsername(ctx context.Context, username string) (*entities.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateFCMToken(ctx context.Context, id, token string) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role     *entities.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
