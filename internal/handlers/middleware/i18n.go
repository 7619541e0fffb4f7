package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = dto.LanguageContextKey
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = dto.I18nServiceContextKey
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
	supported   []string
	matcher     language.Matcher
}

// NewI18nMiddleware cria um novo middleware de i18n. Os idiomas carregados
// que não formam uma tag BCP 47 válida ficam fora do matcher.
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	var (
		supported []string
		tags      []language.Tag
	)
	for _, lang := range i18nService.GetSupportedLanguages() {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, lang)
		tags = append(tags, tag)
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		supported:   supported,
		matcher:     language.NewMatcher(tags),
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header, respeitando os pesos q
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.matchQuery(c.Query("lang"))

		if lang == "" {
			lang = m.matchAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// matchQuery resolve o valor de ?lang= contra os idiomas carregados
func (m *I18nMiddleware) matchQuery(lang string) string {
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	return m.matchTag(tag)
}

// matchAcceptLanguage retorna o idioma suportado de maior peso no header.
// Exemplo: "fr,pt-BR;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) matchAcceptLanguage(header string) string {
	header = normalizeAcceptLanguage(header)
	if header == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}

	// um tag por vez: o primeiro com correspondência vence, na ordem dos pesos
	for _, tag := range tags {
		if lang := m.matchTag(tag); lang != "" {
			return lang
		}
	}
	return ""
}

func (m *I18nMiddleware) matchTag(tag language.Tag) string {
	if tag == language.Und || len(m.supported) == 0 {
		return ""
	}
	_, index, confidence := m.matcher.Match(tag)
	if confidence == language.No {
		return ""
	}
	return m.supported[index]
}

// normalizeAcceptLanguage reescreve cada entrada como "tag" ou "tag;q=peso".
// language.ParseAcceptLanguage rejeita o header inteiro quando uma entrada
// traz "Q=", parâmetros além do q ou um curinga; aqui essas entradas são
// reduzidas ao tag e ao peso, e as inválidas são descartadas.
func normalizeAcceptLanguage(header string) string {
	var entries []string
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		tag := strings.TrimSpace(fields[0])
		if tag == "" || tag == "*" {
			continue
		}
		if _, err := language.Parse(tag); err != nil {
			continue
		}

		entry := tag
		valid := true
		for _, param := range fields[1:] {
			name, value, _ := strings.Cut(strings.TrimSpace(param), "=")
			if !strings.EqualFold(strings.TrimSpace(name), "q") {
				continue
			}
			value = strings.TrimSpace(value)
			if _, err := strconv.ParseFloat(value, 32); err != nil {
				valid = false
				break
			}
			entry = tag + ";q=" + value
			break
		}
		if valid {
			entries = append(entries, entry)
		}
	}
	return strings.Join(entries, ",")
}
