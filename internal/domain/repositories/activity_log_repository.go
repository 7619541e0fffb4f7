package repositories

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// ActivityLogRepository é append-only
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entities.ActivityLog) error
	ListRecent(ctx context.Context, limit int) ([]*entities.ActivityLog, error)
}
