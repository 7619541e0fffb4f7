package postgres

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// ActivityLogRepository implementa repositories.ActivityLogRepository
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository cria um novo ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) repositories.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, log *entities.ActivityLog) error {
	var undo *string
	if len(log.UndoData) > 0 {
		value := string(log.UndoData)
		undo = &value
	}

	model := &ActivityLogModel{
		ID:          log.ID,
		AdminID:     log.AdminID,
		Action:      string(log.Action),
		RecordTable: log.TableName,
		RecordID:    log.RecordID,
		Description: log.Description,
		UndoData:    undo,
		CreatedAt:   log.CreatedAt,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	log.CreatedAt = model.CreatedAt
	return nil
}

func (r *ActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]*entities.ActivityLog, error) {
	var models []*ActivityLogModel

	// IDs snowflake são crescentes no tempo: desempata registros do mesmo instante
	if err := getDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*entities.ActivityLog, 0, len(models))
	for _, model := range models {
		entry := &entities.ActivityLog{
			ID:          model.ID,
			AdminID:     model.AdminID,
			Action:      entities.ActivityAction(model.Action),
			TableName:   model.RecordTable,
			RecordID:    model.RecordID,
			Description: model.Description,
			CreatedAt:   model.CreatedAt,
		}
		if model.UndoData != nil {
			entry.UndoData = json.RawMessage(*model.UndoData)
		}
		logs = append(logs, entry)
	}

	return logs, nil
}
