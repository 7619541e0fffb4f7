package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// DentalModelRepository implementa repositories.DentalModelRepository
type DentalModelRepository struct {
	db *gorm.DB
}

// NewDentalModelRepository cria um novo DentalModelRepository
func NewDentalModelRepository(db *gorm.DB) repositories.DentalModelRepository {
	return &DentalModelRepository{db: db}
}

// UpsertBefore grava ou substitui os ponteiros "before" do prontuário
func (r *DentalModelRepository) UpsertBefore(ctx context.Context, model *entities.DentalModel) error {
	row := &DentalModelModel{
		RecordID:          model.RecordID,
		BeforeModelURL:    model.BeforeModelURL,
		BeforeModelBinURL: model.BeforeModelBinURL,
		BeforeUploadedAt:  model.BeforeUploadedAt,
	}

	return getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"before_model_url", "before_model_bin_url", "before_uploaded_at"}),
	}).Create(row).Error
}

func (r *DentalModelRepository) FindByRecordID(ctx context.Context, recordID string) (*entities.DentalModel, error) {
	var row DentalModelModel

	if err := getDB(ctx, r.db).Where("record_id = ?", recordID).First(&row).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	return &entities.DentalModel{
		RecordID:          row.RecordID,
		BeforeModelURL:    row.BeforeModelURL,
		BeforeModelBinURL: row.BeforeModelBinURL,
		BeforeUploadedAt:  row.BeforeUploadedAt,
	}, nil
}
