package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	model := &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	notification.CreatedAt = model.CreatedAt
	return nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]*entities.Notification, error) {
	var models []*NotificationModel

	err := getDB(ctx, r.db).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for _, model := range models {
		notifications = append(notifications, &entities.Notification{
			ID:        model.ID,
			UserID:    model.UserID,
			Title:     model.Title,
			Message:   model.Message,
			Type:      entities.NotificationType(model.Type),
			IsRead:    model.IsRead,
			CreatedAt: model.CreatedAt,
		})
	}

	return notifications, nil
}

// MarkRead só altera notificações endereçadas ao próprio usuário; broadcasts não têm dono
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	result := getDB(ctx, r.db).Model(&NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
