package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
	"github.com/rafabene/dentalclinic-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID não filtra soft delete: é a busca direta por id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindActiveByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ? AND is_deleted = ?", id, false)
}

func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "LOWER(username) = LOWER(?) AND is_deleted = ?", username, false)
}

func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER(?) AND is_deleted = ?", email, false)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateWriteError(err)
	}

	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) UpdateFCMToken(ctx context.Context, id, token string) error {
	return getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Update("fcm_token", token).Error
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	// Soft delete: marcar is_deleted ao invés de deletar
	return getDB(ctx, r.db).Model(&UserModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at}).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel

	scoped := func() *gorm.DB {
		// Soft delete: ignorar registros deletados
		query := getDB(ctx, r.db).Model(&UserModel{}).Where("is_deleted = ?", false)

		// Aplicar filtros
		if filters.Role != nil {
			query = query.Where("usertype = ?", string(*filters.Role))
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	offset := (page - 1) * pageSize

	if err := scoped().Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users, err := r.toEntities(models)
	return users, total, err
}

// normalizePage aplica os limites de paginação (default 20, máximo 100)
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email.String(),
		UserType:      string(user.Role),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		ContactNumber: user.ContactNumber,
		Address:       user.Address,
		FCMToken:      user.FCMToken,
		IsDeleted:     user.IsDeleted,
		DeletedAt:     user.DeletedAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:            model.ID,
		Username:      model.Username,
		Email:         email,
		Role:          entities.Role(model.UserType),
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		ContactNumber: model.ContactNumber,
		Address:       model.Address,
		FCMToken:      model.FCMToken,
		IsDeleted:     model.IsDeleted,
		DeletedAt:     model.DeletedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
