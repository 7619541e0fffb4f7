package repositories

import (
	"context"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// ServiceRepository define a persistência dos serviços odontológicos
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	FindByID(ctx context.Context, id string) (*entities.Service, error)
	FindActiveByID(ctx context.Context, id string) (*entities.Service, error)
	// FindActiveByName compara sem diferenciar maiúsculas/minúsculas
	FindActiveByName(ctx context.Context, name string) (*entities.Service, error)
	Update(ctx context.Context, service *entities.Service) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	ListActive(ctx context.Context) ([]*entities.Service, error)
}
