package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

const (
	gltfContentType = "model/gltf+json"
	binContentType  = "application/octet-stream"
)

var recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ModelService recebe os modelos 3D dos prontuários e entrega URLs assinadas
type ModelService struct {
	repo      repositories.DentalModelRepository
	store     ports.ObjectStore
	tmpDir    string
	signedTTL time.Duration
	logger    ports.Logger
	now       func() time.Time
}

// NewModelService cria um novo ModelService. tmpDir vazio usa o diretório temporário do sistema.
func NewModelService(
	repo repositories.DentalModelRepository,
	store ports.ObjectStore,
	tmpDir string,
	signedTTL time.Duration,
	logger ports.Logger,
) *ModelService {
	return &ModelService{
		repo:      repo,
		store:     store,
		tmpDir:    tmpDir,
		signedTTL: signedTTL,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// UploadInput são os arquivos do modelo "before". Bin é opcional.
type UploadInput struct {
	RecordID string
	GLTF     io.Reader
	Bin      io.Reader
}

// ModelURLs são as URLs assinadas de um modelo
type ModelURLs struct {
	RecordID   string
	GLTFURL    string
	BinURL     *string
	UploadedAt time.Time
	ExpiresIn  time.Duration
}

// BeforeModelKey é a chave do arquivo no object storage
func BeforeModelKey(recordID, file string) string {
	return fmt.Sprintf("records/%s/before/%s", recordID, file)
}

// UploadBeforeModel envia o gltf (e o bin, se houver) e grava o ponteiro do prontuário
func (s *ModelService) UploadBeforeModel(ctx context.Context, input UploadInput) (*entities.DentalModel, error) {
	if !recordIDPattern.MatchString(input.RecordID) {
		return nil, apperrors.ErrInvalidRecordID
	}
	if input.GLTF == nil {
		return nil, apperrors.ErrMissingFile
	}

	gltfKey := BeforeModelKey(input.RecordID, "model.gltf")
	if err := s.spoolAndUpload(ctx, input.GLTF, gltfKey, gltfContentType); err != nil {
		return nil, err
	}

	model := &entities.DentalModel{
		RecordID:         input.RecordID,
		BeforeModelURL:   gltfKey,
		BeforeUploadedAt: s.now(),
	}

	if input.Bin != nil {
		binKey := BeforeModelKey(input.RecordID, "model.bin")
		if err := s.spoolAndUpload(ctx, input.Bin, binKey, binContentType); err != nil {
			return nil, err
		}
		model.BeforeModelBinURL = &binKey
	}

	if err := s.repo.UpsertBefore(ctx, model); err != nil {
		return nil, storeError("upsert_dental_model", err)
	}

	s.logger.Info("before model uploaded", "record_id", input.RecordID, "has_bin", model.BeforeModelBinURL != nil)
	return model, nil
}

// spoolAndUpload copia o arquivo para o disco local e envia a cópia.
// A cópia temporária é removida em qualquer desfecho.
func (s *ModelService) spoolAndUpload(ctx context.Context, body io.Reader, key, contentType string) error {
	tmp, err := os.CreateTemp(s.tmpDir, "model-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()

	if _, err := io.Copy(tmp, body); err != nil {
		return fmt.Errorf("spool upload: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind temp file: %w", err)
	}

	return s.store.Upload(ctx, key, contentType, tmp)
}

// GetModel assina as URLs do modelo de um prontuário
func (s *ModelService) GetModel(ctx context.Context, recordID string) (*ModelURLs, error) {
	if !recordIDPattern.MatchString(recordID) {
		return nil, apperrors.ErrModelNotFound
	}

	model, err := s.repo.FindByRecordID(ctx, recordID)
	if err != nil {
		return nil, storeError("find_dental_model", err)
	}
	if model == nil {
		return nil, apperrors.ErrModelNotFound
	}

	gltfURL, err := s.store.SignedURL(ctx, model.BeforeModelURL, s.signedTTL)
	if err != nil {
		return nil, err
	}

	urls := &ModelURLs{
		RecordID:   model.RecordID,
		GLTFURL:    gltfURL,
		UploadedAt: model.BeforeUploadedAt,
		ExpiresIn:  s.signedTTL,
	}

	if model.BeforeModelBinURL != nil {
		binURL, err := s.store.SignedURL(ctx, *model.BeforeModelBinURL, s.signedTTL)
		if err != nil {
			return nil, err
		}
		urls.BinURL = &binURL
	}

	return urls, nil
}
