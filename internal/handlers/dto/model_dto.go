package dto

import (
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// DentalModelResponse é o registro gravado após o upload
type DentalModelResponse struct {
	RecordID          string    `json:"record_id"`
	BeforeModelURL    string    `json:"before_model_url"`
	BeforeModelBinURL *string   `json:"before_model_bin_url"`
	BeforeUploadedAt  time.Time `json:"before_uploaded_at"`
}

// ModelURLsResponse traz as URLs assinadas para baixar o modelo
type ModelURLsResponse struct {
	RecordID   string    `json:"record_id"`
	GLTFURL    string    `json:"gltf_url"`
	BinURL     *string   `json:"bin_url"`
	UploadedAt time.Time `json:"uploaded_at"`
	ExpiresIn  int       `json:"expires_in"`
}

// ToDentalModelResponse converte a entidade DentalModel
func ToDentalModelResponse(model *entities.DentalModel) DentalModelResponse {
	return DentalModelResponse{
		RecordID:          model.RecordID,
		BeforeModelURL:    model.BeforeModelURL,
		BeforeModelBinURL: model.BeforeModelBinURL,
		BeforeUploadedAt:  model.BeforeUploadedAt,
	}
}

// ToModelURLsResponse converte as URLs assinadas; ExpiresIn vai em segundos
func ToModelURLsResponse(urls *services.ModelURLs) ModelURLsResponse {
	return ModelURLsResponse{
		RecordID:   urls.RecordID,
		GLTFURL:    urls.GLTFURL,
		BinURL:     urls.BinURL,
		UploadedAt: urls.UploadedAt,
		ExpiresIn:  int(urls.ExpiresIn.Seconds()),
	}
}
