package entities

import "time"

// NotificationType classifica a notificação
type NotificationType string

const (
	NotificationAccount NotificationType = "account"
	NotificationService NotificationType = "service"
	NotificationModel   NotificationType = "model"
)

// Notification é uma mensagem para um usuário. UserID nil significa broadcast.
type Notification struct {
	ID        string
	UserID    *string
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}

// IsBroadcast verifica se a notificação é para todos os usuários
func (n *Notification) IsBroadcast() bool {
	return n.UserID == nil
}
