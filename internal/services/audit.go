package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

const (
	tableUsers      = "users"
	tableServices   = "services"
	tableCategories = "service_categories"

	// DefaultActivityLimit é o tamanho padrão da listagem de auditoria
	DefaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityRecorder grava a trilha de auditoria das operações de admin.
// Falhas são logadas e nunca propagadas para a operação principal.
type ActivityRecorder struct {
	repo   repositories.ActivityLogRepository
	ids    ports.IDGenerator
	logger ports.Logger
	now    func() time.Time
}

// NewActivityRecorder cria um novo ActivityRecorder
func NewActivityRecorder(
	repo repositories.ActivityLogRepository,
	ids ports.IDGenerator,
	logger ports.Logger,
) *ActivityRecorder {
	return &ActivityRecorder{
		repo:   repo,
		ids:    ids,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Record registra uma mutação. snapshot é o estado que permite desfazer a operação.
func (r *ActivityRecorder) Record(
	ctx context.Context,
	adminID string,
	action entities.ActivityAction,
	table, recordID, description string,
	snapshot any,
) {
	entry := &entities.ActivityLog{
		ID:          r.ids.NextID(),
		AdminID:     adminID,
		Action:      action,
		TableName:   table,
		RecordID:    recordID,
		Description: description,
		CreatedAt:   r.now(),
	}

	if snapshot != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			r.logger.Error("failed to encode undo data", "table", table, "record_id", recordID, "error", err)
		} else {
			entry.UndoData = data
		}
	}

	// A auditoria não deve falhar junto com um request cancelado logo após a mutação
	if err := r.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		r.logger.Error("failed to write activity log",
			"admin_id", adminID,
			"action", action,
			"table", table,
			"record_id", recordID,
			"error", err,
		)
	}
}

// Recent lista as últimas entradas, mais recentes primeiro
func (r *ActivityRecorder) Recent(ctx context.Context, limit int) ([]*entities.ActivityLog, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	logs, err := r.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, storeError("list_activity_logs", err)
	}
	return logs, nil
}

// Snapshots gravados em undo_data, com os nomes das colunas

type userSnapshot struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	UserType      string     `json:"usertype"`
	FirstName     string     `json:"firstname"`
	LastName      string     `json:"lastname"`
	ContactNumber *string    `json:"contact_number"`
	Address       *string    `json:"address"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at"`
}

func snapshotUser(u *entities.User) userSnapshot {
	return userSnapshot{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email.String(),
		UserType:      string(u.Role),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		ContactNumber: u.ContactNumber,
		Address:       u.Address,
		IsDeleted:     u.IsDeleted,
		DeletedAt:     u.DeletedAt,
	}
}

type serviceSnapshot struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Price               float64    `json:"price"`
	AllowInstallment    bool       `json:"allow_installment"`
	InstallmentTimes    *int       `json:"installment_times"`
	InstallmentInterval *string    `json:"installment_interval"`
	CustomIntervalDays  *int       `json:"custom_interval_days"`
	CategoryID          *string    `json:"category_id"`
	IsDeleted           bool       `json:"is_deleted"`
	DeletedAt           *time.Time `json:"deleted_at"`
}

func snapshotService(s *entities.Service) serviceSnapshot {
	var interval *string
	if s.InstallmentInterval != nil {
		value := string(*s.InstallmentInterval)
		interval = &value
	}

	return serviceSnapshot{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		Price:               s.Price,
		AllowInstallment:    s.AllowInstallment,
		InstallmentTimes:    s.InstallmentTimes,
		InstallmentInterval: interval,
		CustomIntervalDays:  s.CustomIntervalDays,
		CategoryID:          s.CategoryID,
		IsDeleted:           s.IsDeleted,
		DeletedAt:           s.DeletedAt,
	}
}

type categorySnapshot struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func snapshotCategory(c *entities.Category) categorySnapshot {
	return categorySnapshot{
		ID:        c.ID,
		Name:      c.Name,
		IsDeleted: c.IsDeleted,
		DeletedAt: c.DeletedAt,
	}
}
