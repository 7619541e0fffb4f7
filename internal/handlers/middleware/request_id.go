package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
)

// RequestIDHeader é o header de correlação aceito e devolvido
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reaproveita o X-Request-ID do cliente ou gera um KSUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = ksuid.New().String()
		}

		c.Set(dto.RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// BaseURL grava a URL base usada nos "type" dos problem details
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, baseURL)
		c.Next()
	}
}

// RequestLogger registra uma linha por requisição
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(dto.RequestIDContextKey),
			"client_ip", c.ClientIP(),
		}
		if identity, ok := GetIdentity(c); ok {
			args = append(args, "user_id", identity.UserID)
		}

		switch {
		case status >= 500:
			logger.Error("request completed", args...)
		case status >= 400:
			logger.Warn("request completed", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}
