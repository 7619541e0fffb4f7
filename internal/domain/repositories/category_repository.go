package repositories

import (
	"context"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// CategoryRepository define a persistência das categorias e dos links serviço→categoria
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	FindActiveByID(ctx context.Context, id string) (*entities.Category, error)
	FindActiveByName(ctx context.Context, name string) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	ListActive(ctx context.Context) ([]*entities.Category, error)

	// SetServiceCategory remove o link anterior do serviço e cria o novo.
	// categoryID nil apenas remove.
	SetServiceCategory(ctx context.Context, serviceID string, categoryID *string) error
	ListLinks(ctx context.Context) ([]entities.CategoryLink, error)
}
