package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// RefreshTokenRepository implementa repositories.RefreshTokenRepository
type RefreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository cria um novo RefreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) repositories.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *entities.RefreshToken) error {
	model := &RefreshTokenModel{
		Token:     token.Token,
		UserID:    token.UserID,
		CreatedAt: token.CreatedAt,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	token.CreatedAt = model.CreatedAt
	return nil
}

func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error) {
	var model RefreshTokenModel

	if err := getDB(ctx, r.db).Where("token = ?", token).First(&model).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	return &entities.RefreshToken{
		Token:     model.Token,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
	}, nil
}

func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return getDB(ctx, r.db).Where("token = ?", token).Delete(&RefreshTokenModel{}).Error
}
