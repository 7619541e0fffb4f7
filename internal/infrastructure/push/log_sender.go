package push

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// LogSender implementa ports.PushSender registrando a mensagem no log.
// O provedor de push real fica fora deste serviço.
type LogSender struct {
	logger ports.Logger
}

// NewLogSender cria um sender que apenas registra as mensagens
func NewLogSender(logger ports.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "push")}
}

func (s *LogSender) Send(_ context.Context, msg ports.PushMessage) error {
	target := msg.DeviceToken
	if target == "" {
		target = "topic:" + msg.Topic
	}
	s.logger.Info("push notification dispatched",
		"target", target,
		"title", msg.Title,
	)
	return nil
}
