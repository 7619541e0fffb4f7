package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

const (
	// BroadcastTopic é o tópico push assinado por todos os aparelhos
	BroadcastTopic = "all"

	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

// NotificationService persiste notificações e dispara o push correspondente.
// Notificar é efeito colateral: falhas são logadas e não quebram a operação principal.
type NotificationService struct {
	repo     repositories.NotificationRepository
	userRepo repositories.UserRepository
	push     ports.PushSender
	logger   ports.Logger
	now      func() time.Time
}

// NewNotificationService cria um novo NotificationService
func NewNotificationService(
	repo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	push ports.PushSender,
	logger ports.Logger,
) *NotificationService {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
		push:     push,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NotifyUser notifica um usuário específico
func (s *NotificationService) NotifyUser(ctx context.Context, userID string, kind entities.NotificationType, title, message string) {
	s.notify(ctx, &userID, kind, title, message)
}

// Broadcast notifica todos os usuários
func (s *NotificationService) Broadcast(ctx context.Context, kind entities.NotificationType, title, message string) {
	s.notify(ctx, nil, kind, title, message)
}

func (s *NotificationService) notify(ctx context.Context, userID *string, kind entities.NotificationType, title, message string) {
	ctx = context.WithoutCancel(ctx)

	notification := &entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Error("failed to store notification", "type", kind, "error", err)
		return
	}

	msg := ports.PushMessage{
		Title: title,
		Body:  message,
		Data: map[string]string{
			"notification_id": notification.ID,
			"type":            string(kind),
		},
	}

	if notification.IsBroadcast() {
		msg.Topic = BroadcastTopic
	} else {
		user, err := s.userRepo.FindActiveByID(ctx, *userID)
		if err != nil {
			s.logger.Error("failed to load push target", "user_id", *userID, "error", err)
			return
		}
		// Sem aparelho registrado: a notificação fica só no banco
		if user == nil || user.FCMToken == nil || *user.FCMToken == "" {
			return
		}
		msg.DeviceToken = *user.FCMToken
	}

	if err := s.push.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send push notification", "notification_id", notification.ID, "error", err)
	}
}

// List retorna as notificações do usuário e os broadcasts
func (s *NotificationService) List(ctx context.Context, userID string, limit int) ([]*entities.Notification, error) {
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := s.repo.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, storeError("list_notifications", err)
	}
	return notifications, nil
}

// MarkRead marca como lida uma notificação do próprio usuário
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return storeError("mark_notification_read", err)
	}
	if !ok {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
