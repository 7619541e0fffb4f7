package entities

import "time"

// DentalModel aponta para os arquivos 3D de um prontuário no object storage
type DentalModel struct {
	RecordID          string
	BeforeModelURL    string
	BeforeModelBinURL *string
	BeforeUploadedAt  time.Time
}
