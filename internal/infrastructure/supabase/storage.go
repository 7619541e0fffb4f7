package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// StorageClient implementa ports.ObjectStore sobre o Storage do backend
type StorageClient struct {
	client *Client
	bucket string
}

// NewStorageClient cria o adaptador para um bucket
func NewStorageClient(client *Client, bucket string) *StorageClient {
	return &StorageClient{client: client, bucket: bucket}
}

var _ ports.ObjectStore = (*StorageClient)(nil)

// Upload grava (ou sobrescreve) o objeto na chave informada
func (s *StorageClient) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err := s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, escapePath(key)),
		rawBody:     body,
		contentType: contentType,
		headers:     map[string]string{"x-upsert": "true"},
	}, nil)
	if err != nil {
		return apperrors.Upstream("storage.upload", err)
	}
	return nil
}

// SignedURL gera uma URL temporária de leitura
func (s *StorageClient) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	var out struct {
		SignedURL string `json:"signedURL"`
	}

	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/storage/v1/object/sign/%s/%s", s.bucket, escapePath(key)),
		body:   map[string]int{"expiresIn": int(ttl.Seconds())},
	}, &out)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) || hasStatus(err, http.StatusBadRequest) {
			return "", apperrors.ErrModelNotFound
		}
		return "", apperrors.Upstream("storage.sign", err)
	}

	return s.client.baseURL + "/storage/v1" + out.SignedURL, nil
}
