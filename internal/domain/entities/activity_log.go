package entities

import (
	"encoding/json"
	"time"
)

// ActivityAction identifica o tipo de mutação registrada
type ActivityAction string

const (
	ActionCreate ActivityAction = "CREATE"
	ActionUpdate ActivityAction = "UPDATE"
	ActionDelete ActivityAction = "DELETE"
)

// ActivityLog é uma linha append-only de auditoria das operações de admin.
// UndoData guarda o estado anterior à mudança em JSON.
type ActivityLog struct {
	ID          int64
	AdminID     string
	Action      ActivityAction
	TableName   string
	RecordID    string
	Description string
	UndoData    json.RawMessage
	CreatedAt   time.Time
}
