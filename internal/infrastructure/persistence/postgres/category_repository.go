package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := r.toModel(category)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	category.CreatedAt = model.CreatedAt
	category.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CategoryRepository) FindActiveByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.findOne(ctx, "id = ? AND is_deleted = ?", id, false)
}

func (r *CategoryRepository) FindActiveByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, "LOWER(name) = LOWER(?) AND is_deleted = ?", name, false)
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Category, error) {
	var model CategoryModel

	if err := getDB(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	return r.toEntity(&model), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	model := r.toModel(category)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateWriteError(err)
	}

	category.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CategoryRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return getDB(ctx, r.db).Model(&CategoryModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at}).Error
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	if err := getDB(ctx, r.db).Where("is_deleted = ?", false).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, r.toEntity(model))
	}
	return categories, nil
}

func (r *CategoryRepository) SetServiceCategory(ctx context.Context, serviceID string, categoryID *string) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&CategoryLinkModel{}).Error; err != nil {
			return err
		}

		if categoryID == nil {
			return nil
		}

		link := &CategoryLinkModel{ServiceID: serviceID, CategoryID: *categoryID}
		return translateWriteError(tx.Create(link).Error)
	})
}

func (r *CategoryRepository) ListLinks(ctx context.Context) ([]entities.CategoryLink, error) {
	var models []CategoryLinkModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	links := make([]entities.CategoryLink, 0, len(models))
	for _, model := range models {
		links = append(links, entities.CategoryLink{ServiceID: model.ServiceID, CategoryID: model.CategoryID})
	}
	return links, nil
}

func (r *CategoryRepository) toModel(category *entities.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		IsDeleted: category.IsDeleted,
		DeletedAt: category.DeletedAt,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func (r *CategoryRepository) toEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:        model.ID,
		Name:      model.Name,
		IsDeleted: model.IsDeleted,
		DeletedAt: model.DeletedAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
