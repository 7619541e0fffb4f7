package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/i18n"
)

// Chaves usadas no contexto do Gin. Ficam aqui para que o middleware
// possa gravar e os DTOs possam ler sem ciclo de import.
const (
	LanguageContextKey    = "language"
	I18nServiceContextKey = "i18n_service"
	BaseURLContextKey     = "base_url"
	RequestIDContextKey   = "request_id"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.required", map[string]any{"Field": "email"})
func T(c *gin.Context, key string, params ...map[string]any) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(LanguageContextKey); lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
