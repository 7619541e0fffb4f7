package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/middleware"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// NotificationHandler lista e marca notificações do usuário autenticado
type NotificationHandler struct {
	notifications *services.NotificationService
	logger        ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService, logger ports.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		logger:        logger,
	}
}

// List devolve as notificações do usuário e os broadcasts, mais recentes primeiro
//
//	@Summary	Notificações do usuário
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Máximo de itens"
//	@Success	200		{array}	dto.NotificationResponse
//	@Router		/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, h.logger, errors.ErrUnauthorized)
		return
	}

	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	notifications, err := h.notifications.List(c.Request.Context(), identity.UserID, query.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// MarkRead marca uma notificação própria como lida
//
//	@Summary	Marca notificação como lida
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID da notificação"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, h.logger, errors.ErrUnauthorized)
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.notification_read"))
}

// ActivityLogHandler expõe o log de auditoria para admins
type ActivityLogHandler struct {
	audit  *services.ActivityRecorder
	logger ports.Logger
}

// NewActivityLogHandler cria um novo ActivityLogHandler
func NewActivityLogHandler(audit *services.ActivityRecorder, logger ports.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		audit:  audit,
		logger: logger,
	}
}

// List devolve as últimas entradas do log de auditoria
//
//	@Summary	Últimas entradas do log de auditoria
//	@Tags		activity-logs
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Máximo de itens (max 200)"
//	@Success	200		{array}	dto.ActivityLogResponse
//	@Router		/activity-logs [get]
func (h *ActivityLogHandler) List(c *gin.Context) {
	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	logs, err := h.audit.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityLogResponses(logs))
}
