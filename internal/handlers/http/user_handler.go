package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/middleware"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

const defaultPageSize = 20

// UserHandler lida com requisições HTTP relacionadas a usuários (somente admin)
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lista usuários ativos
//
//	@Summary	Lista usuários ativos
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		usertype	query		string	false	"admin, patient ou dentist"
//	@Param		page		query		int		false	"Página (começa em 1)"
//	@Param		page_size	query		int		false	"Itens por página (max 100)"
//	@Success	200			{object}	dto.UserListResponse
//	@Router		/users/all [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), query.ToFilters())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, pageSize := query.Page, query.PageSize
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users:      dto.ToUserResponses(users),
		Pagination: dto.Pagination{Page: page, PageSize: pageSize, Total: total},
	})
}

// GetUser busca um usuário por ID, inclusive deletado
//
//	@Summary	Busca um usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// AddUser cria um usuário de qualquer papel
//
//	@Summary	Cria um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.AddUserRequest	true	"Perfil e senha"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/users/add [post]
func (h *UserHandler) AddUser(c *gin.Context) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.AddUser(c.Request.Context(), adminID(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// EditUser substitui o perfil de um usuário ativo
//
//	@Summary	Edita um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"ID do usuário"
//	@Param		body	body		dto.EditUserRequest	true	"Perfil"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/users/edit/{id} [put]
func (h *UserHandler) EditUser(c *gin.Context) {
	var req dto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.EditUser(c.Request.Context(), adminID(c), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser faz o soft delete de um usuário
//
//	@Summary	Remove um usuário (soft delete)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/delete/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.userService.DeleteUser(c.Request.Context(), adminID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// adminID é o autor das mutações, sempre vindo do token verificado
func adminID(c *gin.Context) string {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return ""
	}
	return identity.UserID
}
