package http

import (
	errs "errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// ModelHandler recebe e serve os modelos 3D dos prontuários
type ModelHandler struct {
	models       *services.ModelService
	logger       ports.Logger
	maxBodyBytes int64
}

// NewModelHandler cria um novo ModelHandler. maxBodyBytes limita o multipart inteiro.
func NewModelHandler(models *services.ModelService, logger ports.Logger, maxBodyBytes int64) *ModelHandler {
	return &ModelHandler{
		models:       models,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// UploadBeforeModel recebe o modelo "antes" de um prontuário
//
//	@Summary	Envia o modelo 3D "antes" de um prontuário
//	@Tags		models
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		record_id	formData	string	true	"ID do prontuário"
//	@Param		gltf		formData	file	true	"Modelo glTF"
//	@Param		bin			formData	file	false	"Buffer binário do glTF"
//	@Success	201			{object}	dto.DentalModelResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/buckets/upload/beforemodel [post]
func (h *ModelHandler) UploadBeforeModel(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	gltf, err := openFormFile(c, "gltf")
	if err != nil {
		h.respondUploadError(c, err)
		return
	}
	if gltf == nil {
		respondError(c, h.logger, errors.ErrMissingFile)
		return
	}
	defer gltf.Close()

	input := services.UploadInput{
		RecordID: c.PostForm("record_id"),
		GLTF:     gltf,
	}

	bin, err := openFormFile(c, "bin")
	if err != nil {
		h.respondUploadError(c, err)
		return
	}
	if bin != nil {
		defer bin.Close()
		input.Bin = bin
	}

	model, err := h.models.UploadBeforeModel(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDentalModelResponse(model))
}

// GetModel devolve URLs assinadas de curta duração para o modelo
//
//	@Summary	URLs assinadas do modelo de um prontuário
//	@Tags		models
//	@Produce	json
//	@Security	BearerAuth
//	@Param		record_id	path		string	true	"ID do prontuário"
//	@Success	200			{object}	dto.ModelURLsResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/buckets/model/{record_id} [get]
func (h *ModelHandler) GetModel(c *gin.Context) {
	urls, err := h.models.GetModel(c.Request.Context(), c.Param("record_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelURLsResponse(urls))
}

// openFormFile abre um arquivo do multipart; ausência devolve (nil, nil)
func openFormFile(c *gin.Context, field string) (multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errs.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return header.Open()
}

func (h *ModelHandler) respondUploadError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var maxBytesErr *http.MaxBytesError
	if errs.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
	}

	h.logger.Warn("failed to read multipart upload", "error", err)
	dto.Abort(c, dto.NewErrorResponseI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.detail",
		status,
	))
}
