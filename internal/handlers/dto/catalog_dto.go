package dto

import (
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// ServiceRequest cria ou substitui um serviço
type ServiceRequest struct {
	Name                string   `json:"name" binding:"required,max=150"`
	Description         string   `json:"description" binding:"max=2000"`
	Price               *float64 `json:"price" binding:"required,gte=0"`
	AllowInstallment    bool     `json:"allow_installment"`
	InstallmentTimes    *int     `json:"installment_times" binding:"omitempty,gte=2"`
	InstallmentInterval *string  `json:"installment_interval" binding:"omitempty,oneof=weekly monthly custom"`
	CustomIntervalDays  *int     `json:"custom_interval_days" binding:"omitempty,gte=1"`
	CategoryID          *string  `json:"category_id" binding:"omitempty,uuid"`
}

// ToInput converte a requisição no input do serviço
func (r ServiceRequest) ToInput() services.ServiceInput {
	input := services.ServiceInput{
		Name:               r.Name,
		Description:        r.Description,
		AllowInstallment:   r.AllowInstallment,
		InstallmentTimes:   r.InstallmentTimes,
		CustomIntervalDays: r.CustomIntervalDays,
		CategoryID:         r.CategoryID,
	}
	if r.Price != nil {
		input.Price = *r.Price
	}
	if r.InstallmentInterval != nil {
		interval := entities.InstallmentInterval(*r.InstallmentInterval)
		input.InstallmentInterval = &interval
	}
	return input
}

// CategoryRequest cria ou renomeia uma categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// CategoryResponse representa uma categoria
type CategoryResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ServiceResponse representa um serviço com a categoria resolvida
type ServiceResponse struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Price               float64           `json:"price"`
	AllowInstallment    bool              `json:"allow_installment"`
	InstallmentTimes    *int              `json:"installment_times"`
	InstallmentInterval *string           `json:"installment_interval"`
	CustomIntervalDays  *int              `json:"custom_interval_days"`
	Category            *CategoryResponse `json:"category"`
	IsDeleted           bool              `json:"is_deleted"`
	DeletedAt           *time.Time        `json:"deleted_at,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ServiceGroupResponse é um grupo de GET /services/grouped.
// CategoryID é null para o grupo "No Category".
type ServiceGroupResponse struct {
	CategoryID   *string           `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Services     []ServiceResponse `json:"services"`
}

// ToCategoryResponse converte uma entidade Category
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		IsDeleted: category.IsDeleted,
		DeletedAt: category.DeletedAt,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}

// ToServiceResponse converte um serviço e sua categoria (opcional)
func ToServiceResponse(service *entities.Service, category *entities.Category) ServiceResponse {
	response := ServiceResponse{
		ID:                 service.ID,
		Name:               service.Name,
		Description:        service.Description,
		Price:              service.Price,
		AllowInstallment:   service.AllowInstallment,
		InstallmentTimes:   service.InstallmentTimes,
		CustomIntervalDays: service.CustomIntervalDays,
		IsDeleted:          service.IsDeleted,
		DeletedAt:          service.DeletedAt,
		CreatedAt:          service.CreatedAt,
		UpdatedAt:          service.UpdatedAt,
	}
	if service.InstallmentInterval != nil {
		interval := string(*service.InstallmentInterval)
		response.InstallmentInterval = &interval
	}
	if category != nil {
		categoryResponse := ToCategoryResponse(category)
		response.Category = &categoryResponse
	}
	return response
}

// ToServiceViewResponse converte um ServiceView
func ToServiceViewResponse(view *services.ServiceView) ServiceResponse {
	return ToServiceResponse(view.Service, view.Category)
}

// ToServiceViewResponses converte a listagem de serviços
func ToServiceViewResponses(views []services.ServiceView) []ServiceResponse {
	responses := make([]ServiceResponse, len(views))
	for i := range views {
		responses[i] = ToServiceViewResponse(&views[i])
	}
	return responses
}

// ToServiceGroupResponses converte a listagem agrupada
func ToServiceGroupResponses(groups []services.ServiceGroup) []ServiceGroupResponse {
	responses := make([]ServiceGroupResponse, len(groups))
	for i, group := range groups {
		response := ServiceGroupResponse{
			CategoryName: group.Name(),
			Services:     make([]ServiceResponse, len(group.Services)),
		}
		if group.Category != nil {
			id := group.Category.ID
			response.CategoryID = &id
		}
		for j, service := range group.Services {
			response.Services[j] = ToServiceResponse(service, group.Category)
		}
		responses[i] = response
	}
	return responses
}
