package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// CatalogService contém a lógica de serviços odontológicos e suas categorias
type CatalogService struct {
	serviceRepo  repositories.ServiceRepository
	categoryRepo repositories.CategoryRepository
	uow          ports.UnitOfWork
	audit        *ActivityRecorder
	notifier     *NotificationService
	logger       ports.Logger
	now          func() time.Time
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	serviceRepo repositories.ServiceRepository,
	categoryRepo repositories.CategoryRepository,
	uow ports.UnitOfWork,
	audit *ActivityRecorder,
	notifier *NotificationService,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		uow:          uow,
		audit:        audit,
		notifier:     notifier,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ServiceView é um serviço com a sua categoria resolvida (nil quando não tem)
type ServiceView struct {
	Service  *entities.Service
	Category *entities.Category
}

// ServiceInput representa os dados para criar ou substituir um serviço
type ServiceInput struct {
	Name                string
	Description         string
	Price               float64
	AllowInstallment    bool
	InstallmentTimes    *int
	InstallmentInterval *entities.InstallmentInterval
	CustomIntervalDays  *int
	CategoryID          *string
}

// ==================== Serviços ====================

// ListServices lista os serviços ativos, cada um com sua categoria ativa
func (s *CatalogService) ListServices(ctx context.Context) ([]ServiceView, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, storeError("list_services", err)
	}

	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, storeError("list_categories", err)
	}

	byID := make(map[string]*entities.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	views := make([]ServiceView, 0, len(services))
	for _, service := range services {
		view := ServiceView{Service: service}
		if service.CategoryID != nil {
			view.Category = byID[*service.CategoryID]
		}
		views = append(views, view)
	}
	return views, nil
}

// GroupServices agrupa os serviços ativos por categoria ativa
func (s *CatalogService) GroupServices(ctx context.Context) ([]ServiceGroup, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, storeError("list_categories", err)
	}

	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, storeError("list_services", err)
	}

	links, err := s.categoryRepo.ListLinks(ctx)
	if err != nil {
		return nil, storeError("list_category_links", err)
	}

	return GroupByCategory(categories, services, links), nil
}

// GetService busca um serviço por ID, inclusive deletado
func (s *CatalogService) GetService(ctx context.Context, id string) (*ServiceView, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrServiceNotFound
	}

	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find_service", err)
	}
	if service == nil {
		return nil, apperrors.ErrServiceNotFound
	}

	return s.withCategory(ctx, service)
}

// CreateService cria um serviço e o liga à categoria informada
func (s *CatalogService) CreateService(ctx context.Context, adminID string, input ServiceInput) (*ServiceView, error) {
	now := s.now()
	service := &entities.Service{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyServiceInput(service, input)

	if err := s.validateService(ctx, service, ""); err != nil {
		return nil, err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.serviceRepo.Create(txCtx, service); err != nil {
			return conflictOr("create_service", err, apperrors.ErrServiceNameAlreadyExists)
		}
		return storeError("link_category", s.categoryRepo.SetServiceCategory(txCtx, service.ID, service.CategoryID))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("service created", "service_id", service.ID, "admin_id", adminID)
	s.audit.Record(ctx, adminID, entities.ActionCreate, tableServices, service.ID,
		"created service "+service.Name, snapshotService(service))
	s.notifier.Broadcast(ctx, entities.NotificationService,
		"New service available", fmt.Sprintf("%s is now available.", service.Name))

	return s.withCategory(ctx, service)
}

// UpdateService substitui os dados de um serviço ativo e refaz o link de categoria
func (s *CatalogService) UpdateService(ctx context.Context, adminID, id string, input ServiceInput) (*ServiceView, error) {
	service, err := s.findActiveService(ctx, id)
	if err != nil {
		return nil, err
	}

	before := snapshotService(service)

	applyServiceInput(service, input)
	service.UpdatedAt = s.now()

	if err := s.validateService(ctx, service, service.ID); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.serviceRepo.Update(txCtx, service); err != nil {
			return conflictOr("update_service", err, apperrors.ErrServiceNameAlreadyExists)
		}
		return storeError("link_category", s.categoryRepo.SetServiceCategory(txCtx, service.ID, service.CategoryID))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, entities.ActionUpdate, tableServices, service.ID,
		"updated service "+service.Name, before)

	return s.withCategory(ctx, service)
}

// DeleteService faz soft delete de um serviço ativo. O link de categoria é mantido como histórico.
func (s *CatalogService) DeleteService(ctx context.Context, adminID, id string) (*ServiceView, error) {
	service, err := s.findActiveService(ctx, id)
	if err != nil {
		return nil, err
	}

	before := snapshotService(service)

	service.SoftDelete(s.now())
	if err := s.serviceRepo.SoftDelete(ctx, service.ID, *service.DeletedAt); err != nil {
		return nil, storeError("delete_service", err)
	}

	s.audit.Record(ctx, adminID, entities.ActionDelete, tableServices, service.ID,
		"deleted service "+service.Name, before)

	return s.withCategory(ctx, service)
}

func applyServiceInput(service *entities.Service, input ServiceInput) {
	service.Name = strings.TrimSpace(input.Name)
	service.Description = strings.TrimSpace(input.Description)
	service.Price = input.Price
	service.AllowInstallment = input.AllowInstallment
	service.InstallmentTimes = input.InstallmentTimes
	service.InstallmentInterval = input.InstallmentInterval
	service.CustomIntervalDays = input.CustomIntervalDays
	service.CategoryID = nil
	if input.CategoryID != nil && strings.TrimSpace(*input.CategoryID) != "" {
		categoryID := strings.TrimSpace(*input.CategoryID)
		service.CategoryID = &categoryID
	}
	service.ClearInstallment()
}

// validateService aplica regras da entidade, unicidade do nome (ignorando exceptID)
// e existência da categoria
func (s *CatalogService) validateService(ctx context.Context, service *entities.Service, exceptID string) error {
	if service.Name == "" {
		return apperrors.ErrInvalidName
	}
	if err := service.Validate(); err != nil {
		return err
	}

	existing, err := s.serviceRepo.FindActiveByName(ctx, service.Name)
	if err != nil {
		return storeError("find_service_by_name", err)
	}
	if existing != nil && existing.ID != exceptID {
		return apperrors.ErrServiceNameAlreadyExists
	}

	if service.CategoryID != nil {
		if _, err := s.findActiveCategory(ctx, *service.CategoryID); err != nil {
			return err
		}
	}

	return nil
}

func (s *CatalogService) findActiveService(ctx context.Context, id string) (*entities.Service, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrServiceNotFound
	}

	service, err := s.serviceRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, storeError("find_service", err)
	}
	if service == nil {
		return nil, apperrors.ErrServiceNotFound
	}
	return service, nil
}

func (s *CatalogService) withCategory(ctx context.Context, service *entities.Service) (*ServiceView, error) {
	view := &ServiceView{Service: service}
	if service.CategoryID == nil {
		return view, nil
	}

	category, err := s.categoryRepo.FindActiveByID(ctx, *service.CategoryID)
	if err != nil {
		return nil, storeError("find_category", err)
	}
	view.Category = category
	return view, nil
}

// ==================== Categorias ====================

// ListCategories lista as categorias ativas
func (s *CatalogService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, storeError("list_categories", err)
	}
	return categories, nil
}

// GetCategory busca uma categoria por ID, inclusive deletada
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find_category", err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// CreateCategory cria uma categoria com nome único entre as ativas
func (s *CatalogService) CreateCategory(ctx context.Context, adminID, name string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if err := s.ensureCategoryName(ctx, name, ""); err != nil {
		return nil, err
	}

	now := s.now()
	category := &entities.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, conflictOr("create_category", err, apperrors.ErrCategoryNameAlreadyExists)
	}

	s.audit.Record(ctx, adminID, entities.ActionCreate, tableCategories, category.ID,
		"created category "+category.Name, snapshotCategory(category))

	return category, nil
}

// UpdateCategory renomeia uma categoria ativa
func (s *CatalogService) UpdateCategory(ctx context.Context, adminID, id, name string) (*entities.Category, error) {
	category, err := s.findActiveCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.ensureCategoryName(ctx, name, category.ID); err != nil {
		return nil, err
	}

	before := snapshotCategory(category)

	category.Name = name
	category.UpdatedAt = s.now()
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, conflictOr("update_category", err, apperrors.ErrCategoryNameAlreadyExists)
	}

	s.audit.Record(ctx, adminID, entities.ActionUpdate, tableCategories, category.ID,
		"updated category "+category.Name, before)

	return category, nil
}

// DeleteCategory faz soft delete de uma categoria ativa.
// Os serviços ligados a ela passam a aparecer em "No Category".
func (s *CatalogService) DeleteCategory(ctx context.Context, adminID, id string) (*entities.Category, error) {
	category, err := s.findActiveCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	before := snapshotCategory(category)

	category.SoftDelete(s.now())
	if err := s.categoryRepo.SoftDelete(ctx, category.ID, *category.DeletedAt); err != nil {
		return nil, storeError("delete_category", err)
	}

	s.audit.Record(ctx, adminID, entities.ActionDelete, tableCategories, category.ID,
		"deleted category "+category.Name, before)

	return category, nil
}

func (s *CatalogService) ensureCategoryName(ctx context.Context, name, exceptID string) error {
	if name == "" {
		return apperrors.ErrInvalidName
	}

	existing, err := s.categoryRepo.FindActiveByName(ctx, name)
	if err != nil {
		return storeError("find_category_by_name", err)
	}
	if existing != nil && existing.ID != exceptID {
		return apperrors.ErrCategoryNameAlreadyExists
	}
	return nil
}

func (s *CatalogService) findActiveCategory(ctx context.Context, id string) (*entities.Category, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, storeError("find_category", err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}
