package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// ServiceRepository implementa repositories.ServiceRepository.
// A categoria não é coluna de services: vem de service_category_links.
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository cria um novo ServiceRepository
func NewServiceRepository(db *gorm.DB) repositories.ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	model := r.toModel(service)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	service.CreatedAt = model.CreatedAt
	service.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entities.Service, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ServiceRepository) FindActiveByID(ctx context.Context, id string) (*entities.Service, error) {
	return r.findOne(ctx, "id = ? AND is_deleted = ?", id, false)
}

func (r *ServiceRepository) FindActiveByName(ctx context.Context, name string) (*entities.Service, error) {
	return r.findOne(ctx, "LOWER(name) = LOWER(?) AND is_deleted = ?", name, false)
}

func (r *ServiceRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Service, error) {
	db := getDB(ctx, r.db)

	var model ServiceModel
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	service := r.toEntity(&model)

	var link CategoryLinkModel
	err := db.Where("service_id = ?", model.ID).First(&link).Error
	if err := notFoundAsNil(err); err != nil {
		return nil, err
	}
	if err == nil {
		service.CategoryID = &link.CategoryID
	}

	return service, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	model := r.toModel(service)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateWriteError(err)
	}

	service.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ServiceRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return getDB(ctx, r.db).Model(&ServiceModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at}).Error
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]*entities.Service, error) {
	db := getDB(ctx, r.db)

	var models []*ServiceModel
	if err := db.Where("is_deleted = ?", false).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	var links []CategoryLinkModel
	if err := db.Find(&links).Error; err != nil {
		return nil, err
	}

	categoryByService := make(map[string]string, len(links))
	for _, link := range links {
		categoryByService[link.ServiceID] = link.CategoryID
	}

	services := make([]*entities.Service, 0, len(models))
	for _, model := range models {
		service := r.toEntity(model)
		if categoryID, ok := categoryByService[model.ID]; ok {
			service.CategoryID = &categoryID
		}
		services = append(services, service)
	}

	return services, nil
}

// Conversores
func (r *ServiceRepository) toModel(service *entities.Service) *ServiceModel {
	var interval *string
	if service.InstallmentInterval != nil {
		value := string(*service.InstallmentInterval)
		interval = &value
	}

	return &ServiceModel{
		ID:                  service.ID,
		Name:                service.Name,
		Description:         service.Description,
		Price:               service.Price,
		AllowInstallment:    service.AllowInstallment,
		InstallmentTimes:    service.InstallmentTimes,
		InstallmentInterval: interval,
		CustomIntervalDays:  service.CustomIntervalDays,
		IsDeleted:           service.IsDeleted,
		DeletedAt:           service.DeletedAt,
		CreatedAt:           service.CreatedAt,
		UpdatedAt:           service.UpdatedAt,
	}
}

func (r *ServiceRepository) toEntity(model *ServiceModel) *entities.Service {
	var interval *entities.InstallmentInterval
	if model.InstallmentInterval != nil {
		value := entities.InstallmentInterval(*model.InstallmentInterval)
		interval = &value
	}

	return &entities.Service{
		ID:                  model.ID,
		Name:                model.Name,
		Description:         model.Description,
		Price:               model.Price,
		AllowInstallment:    model.AllowInstallment,
		InstallmentTimes:    model.InstallmentTimes,
		InstallmentInterval: interval,
		CustomIntervalDays:  model.CustomIntervalDays,
		IsDeleted:           model.IsDeleted,
		DeletedAt:           model.DeletedAt,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
