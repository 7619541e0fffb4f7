package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// CatalogHandler expõe serviços e categorias. Leituras são públicas.
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  ports.Logger
}

// NewCatalogHandler cria um novo CatalogHandler
func NewCatalogHandler(catalog *services.CatalogService, logger ports.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListServices lista os serviços ativos com suas categorias
//
//	@Summary	Lista serviços
//	@Tags		services
//	@Produce	json
//	@Success	200	{array}	dto.ServiceResponse
//	@Router		/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceViewResponses(views))
}

// GroupedServices lista os serviços agrupados por categoria
//
//	@Summary	Lista serviços agrupados por categoria
//	@Tags		services
//	@Produce	json
//	@Success	200	{array}	dto.ServiceGroupResponse
//	@Router		/services/grouped [get]
func (h *CatalogHandler) GroupedServices(c *gin.Context) {
	groups, err := h.catalog.GroupServices(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceGroupResponses(groups))
}

// GetService busca um serviço, inclusive deletado
//
//	@Summary	Busca um serviço
//	@Tags		services
//	@Produce	json
//	@Param		id	path		string	true	"ID do serviço"
//	@Success	200	{object}	dto.ServiceResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	view, err := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceViewResponse(view))
}

// CreateService cria um serviço
//
//	@Summary	Cria um serviço
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.ServiceRequest	true	"Serviço"
//	@Success	201		{object}	dto.ServiceResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	view, err := h.catalog.CreateService(c.Request.Context(), adminID(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceViewResponse(view))
}

// UpdateService substitui um serviço ativo
//
//	@Summary	Atualiza um serviço
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"ID do serviço"
//	@Param		body	body		dto.ServiceRequest	true	"Serviço"
//	@Success	200		{object}	dto.ServiceResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	view, err := h.catalog.UpdateService(c.Request.Context(), adminID(c), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceViewResponse(view))
}

// DeleteService faz o soft delete de um serviço
//
//	@Summary	Remove um serviço (soft delete)
//	@Tags		services
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do serviço"
//	@Success	200	{object}	dto.ServiceResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	view, err := h.catalog.DeleteService(c.Request.Context(), adminID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceViewResponse(view))
}

// ListCategories lista as categorias ativas
//
//	@Summary	Lista categorias
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	dto.CategoryResponse
//	@Router		/services/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// GetCategory busca uma categoria, inclusive deletada
//
//	@Summary	Busca uma categoria
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		string	true	"ID da categoria"
//	@Success	200	{object}	dto.CategoryResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/services/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// CreateCategory cria uma categoria
//
//	@Summary	Cria uma categoria
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CategoryRequest	true	"Categoria"
//	@Success	201		{object}	dto.CategoryResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/services/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), adminID(c), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateCategory renomeia uma categoria
//
//	@Summary	Renomeia uma categoria
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"ID da categoria"
//	@Param		body	body		dto.CategoryRequest	true	"Categoria"
//	@Success	200		{object}	dto.CategoryResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/services/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), adminID(c), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory faz o soft delete de uma categoria
//
//	@Summary	Remove uma categoria (soft delete)
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID da categoria"
//	@Success	200	{object}	dto.CategoryResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/services/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	category, err := h.catalog.DeleteCategory(c.Request.Context(), adminID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}
