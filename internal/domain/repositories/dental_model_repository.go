package repositories

import (
	"context"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// DentalModelRepository guarda os ponteiros para os modelos 3D de cada prontuário
type DentalModelRepository interface {
	UpsertBefore(ctx context.Context, model *entities.DentalModel) error
	FindByRecordID(ctx context.Context, recordID string) (*entities.DentalModel, error)
}
