package repositories

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// NotificationRepository persiste notificações individuais e broadcasts
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	// ListForUser retorna as notificações do usuário e os broadcasts, mais recentes primeiro
	ListForUser(ctx context.Context, userID string, limit int) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}
