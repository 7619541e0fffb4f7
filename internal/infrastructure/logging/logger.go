package logging

import (
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/config"
)

// New escolhe a implementação de logger a partir de LOG_DRIVER (slog ou zap)
func New(cfg config.LoggingConfig) (ports.Logger, error) {
	if cfg.Driver == "zap" {
		return NewZapLogger(cfg.Level, cfg.File)
	}
	return NewSlogLogger(cfg.Level), nil
}

// Nop descarta todas as mensagens
type Nop struct{}

func (Nop) Info(string, ...any) {}
func (Nop) Error(string, ...any) {}
func (Nop) Debug(string, ...any) {}
func (Nop) Warn(string, ...any) {}
func (n Nop) With(...any) ports.Logger { return n }
