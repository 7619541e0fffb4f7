package services

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// sagaStep é uma ação com sua compensação. compensate pode ser nil.
type sagaStep struct {
	name       string
	action     func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// Saga executa passos em sequência e, na falha de qualquer um,
// compensa os passos já concluídos em ordem reversa.
// Usada quando uma operação atravessa stores diferentes (provedor de credenciais + banco).
type Saga struct {
	logger ports.Logger
	steps  []sagaStep
}

// NewSaga cria uma saga vazia
func NewSaga(logger ports.Logger) *Saga {
	return &Saga{logger: logger}
}

// Step adiciona um passo à saga
func (s *Saga) Step(name string, action, compensate func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, sagaStep{name: name, action: action, compensate: compensate})
	return s
}

// Execute roda os passos. Retorna o erro do passo que falhou;
// erros de compensação são apenas logados.
func (s *Saga) Execute(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.action(ctx); err != nil {
			s.logger.Warn("saga step failed, compensating", "step", step.name, "error", err)
			s.compensate(ctx, i-1)
			return err
		}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, last int) {
	// A compensação roda mesmo se o request foi cancelado
	ctx = context.WithoutCancel(ctx)

	for i := last; i >= 0; i-- {
		step := s.steps[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed", "step", step.name, "error", err)
		}
	}
}
