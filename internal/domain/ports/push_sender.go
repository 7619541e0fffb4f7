package ports

import "context"

// PushMessage é uma notificação push. DeviceToken vazio envia para o Topic.
type PushMessage struct {
	DeviceToken string
	Topic       string
	Title       string
	Body        string
	Data        map[string]string
}

// PushSender entrega notificações push ao provedor externo
type PushSender interface {
	Send(ctx context.Context, msg PushMessage) error
}
