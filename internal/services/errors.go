package services

import (
	"errors"

	"github.com/google/uuid"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// storeError embrulha falhas do banco como erro upstream.
// Erros que já são do domínio passam sem alteração.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}

	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return err
	}

	return apperrors.Upstream("profiles."+op, err)
}

// conflictOr traduz violação de índice único (corrida entre a checagem e a escrita)
func conflictOr(op string, err error, conflict error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return conflict
	}
	return storeError(op, err)
}

// isUUID evita mandar ao banco ids que a coluna uuid rejeitaria
func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}
