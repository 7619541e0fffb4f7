package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStore guarda os arquivos enviados (modelos 3D) fora do processo
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
