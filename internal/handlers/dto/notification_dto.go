package dto

import (
	"encoding/json"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// LimitQuery limita listagens sem paginação completa
type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,max=200"`
}

// NotificationResponse representa uma notificação
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityLogResponse representa uma linha do log de auditoria.
// O ID snowflake vai como string para não perder precisão em JavaScript.
type ActivityLogResponse struct {
	ID          int64           `json:"id,string"`
	AdminID     string          `json:"admin_id"`
	Action      string          `json:"action"`
	TableName   string          `json:"table_name"`
	RecordID    string          `json:"record_id"`
	Description string          `json:"description"`
	UndoData    json.RawMessage `json:"undo_data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToNotificationResponses converte uma lista de notificações
func ToNotificationResponses(notifications []*entities.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}

// ToActivityLogResponses converte uma lista de logs de auditoria
func ToActivityLogResponses(logs []*entities.ActivityLog) []ActivityLogResponse {
	responses := make([]ActivityLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ActivityLogResponse{
			ID:          log.ID,
			AdminID:     log.AdminID,
			Action:      string(log.Action),
			TableName:   log.TableName,
			RecordID:    log.RecordID,
			Description: log.Description,
			UndoData:    log.UndoData,
			CreatedAt:   log.CreatedAt,
		}
	}
	return responses
}
