package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// Pinger verifica a conexão com o banco
type Pinger func(ctx context.Context) error

// HealthHandler responde o health check
type HealthHandler struct {
	env    string
	ping   Pinger
	logger ports.Logger
}

// NewHealthHandler cria o HealthHandler. ping pode ser nil.
func NewHealthHandler(env string, ping Pinger, logger ports.Logger) *HealthHandler {
	return &HealthHandler{env: env, ping: ping, logger: logger}
}

// Health informa ambiente e estado do banco
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	state, database := "ok", "ok"
	status := http.StatusOK

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.logger.Warn("database ping failed", "error", err)
			state, database = "degraded", "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{
		"status":   state,
		"env":      h.env,
		"database": database,
	})
}
