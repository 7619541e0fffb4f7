package dto

import (
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// AddUserRequest representa a requisição do admin para criar um usuário de qualquer papel
type AddUserRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=30"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6,max=72"`
	UserType      string  `json:"usertype" binding:"required,oneof=admin patient dentist"`
	FirstName     string  `json:"firstname" binding:"required,max=100"`
	LastName      string  `json:"lastname" binding:"required,max=100"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=30"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
}

// ToInput converte a requisição no input do serviço
func (r AddUserRequest) ToInput() services.NewUserInput {
	return services.NewUserInput{
		ProfileInput: EditUserRequest{
			Username:      r.Username,
			Email:         r.Email,
			UserType:      r.UserType,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			ContactNumber: r.ContactNumber,
			Address:       r.Address,
		}.ToInput(),
		Password: r.Password,
	}
}

// EditUserRequest substitui o perfil inteiro; a senha não é editável aqui
type EditUserRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=30"`
	Email         string  `json:"email" binding:"required,email"`
	UserType      string  `json:"usertype" binding:"required,oneof=admin patient dentist"`
	FirstName     string  `json:"firstname" binding:"required,max=100"`
	LastName      string  `json:"lastname" binding:"required,max=100"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=30"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
}

// ToInput converte a requisição no input do serviço
func (r EditUserRequest) ToInput() services.ProfileInput {
	return services.ProfileInput{
		Username:      r.Username,
		Email:         r.Email,
		Role:          entities.Role(r.UserType),
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
	}
}

// ListUsersQuery são os filtros de GET /users/all
type ListUsersQuery struct {
	UserType string `form:"usertype" binding:"omitempty,oneof=admin patient dentist"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,max=100"`
}

// ToFilters converte a query nos filtros do repositório
func (q ListUsersQuery) ToFilters() repositories.UserFilters {
	filters := repositories.UserFilters{Page: q.Page, PageSize: q.PageSize}
	if q.UserType != "" {
		role := entities.Role(q.UserType)
		filters.Role = &role
	}
	return filters
}

// UserResponse representa a resposta de um usuário. Nunca carrega senha.
type UserResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	UserType      string     `json:"usertype"`
	FirstName     string     `json:"firstname"`
	LastName      string     `json:"lastname"`
	ContactNumber *string    `json:"contact_number"`
	Address       *string    `json:"address"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Pagination descreve a página devolvida
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// UserListResponse é a resposta paginada de usuários
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email.String(),
		UserType:      string(user.Role),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		ContactNumber: user.ContactNumber,
		Address:       user.Address,
		IsDeleted:     user.IsDeleted,
		DeletedAt:     user.DeletedAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
