package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
	"github.com/rafabene/dentalclinic-backend/internal/domain/valueobjects"
)

// ProfileInput são os dados de perfil comuns ao cadastro e à edição
type ProfileInput struct {
	Username      string
	Email         string
	Role          entities.Role
	FirstName     string
	LastName      string
	ContactNumber *string
	Address       *string
}

// NewUserInput representa um cadastro (auto-cadastro no app ou criação pelo admin)
type NewUserInput struct {
	ProfileInput
	Password string
}

// userProvisioner cria o usuário nos dois stores: credencial no provedor
// e perfil no banco, com o mesmo id.
type userProvisioner struct {
	userRepo    repositories.UserRepository
	credentials ports.CredentialStore
	uow         ports.UnitOfWork
	logger      ports.Logger
	now         func() time.Time
}

// normalizeProfile valida e normaliza username e email
func normalizeProfile(input ProfileInput) (string, valueobjects.Email, error) {
	username, err := valueobjects.NormalizeUsername(input.Username)
	if err != nil {
		return "", valueobjects.Email{}, apperrors.ErrInvalidUsername
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return "", valueobjects.Email{}, apperrors.ErrInvalidEmail
	}

	return username, email, nil
}

// ensureAvailable verifica unicidade de username e email entre usuários ativos.
// exceptID permite que o próprio usuário mantenha seus valores na edição.
func (p *userProvisioner) ensureAvailable(ctx context.Context, username string, email valueobjects.Email, exceptID string) error {
	existing, err := p.userRepo.FindActiveByUsername(ctx, username)
	if err != nil {
		return storeError("find_user_by_username", err)
	}
	if existing != nil && existing.ID != exceptID {
		return apperrors.ErrUsernameAlreadyExists
	}

	existing, err = p.userRepo.FindActiveByEmail(ctx, email.String())
	if err != nil {
		return storeError("find_user_by_email", err)
	}
	if existing != nil && existing.ID != exceptID {
		return apperrors.ErrEmailAlreadyExists
	}

	return nil
}

// provision executa o cadastro como saga: se o perfil não puder ser gravado,
// a credencial recém-criada é removida.
func (p *userProvisioner) provision(ctx context.Context, input NewUserInput, allowed ...entities.Role) (*entities.User, error) {
	username, email, err := normalizeProfile(input.ProfileInput)
	if err != nil {
		return nil, err
	}

	if !input.Role.IsValid() || !input.Role.In(allowed...) {
		return nil, apperrors.ErrInvalidRole
	}

	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.ErrInvalidName
	}

	if err := p.ensureAvailable(ctx, username, email, ""); err != nil {
		return nil, err
	}

	now := p.now()
	user := &entities.User{
		Username:      username,
		Email:         email,
		Role:          input.Role,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var credential *ports.Credential
	saga := NewSaga(p.logger).
		Step("create_credential",
			func(ctx context.Context) error {
				created, err := p.credentials.CreateUser(ctx, email.String(), input.Password)
				if err != nil {
					return err
				}
				credential = created
				user.ID = created.ID
				return nil
			},
			func(ctx context.Context) error {
				return p.credentials.DeleteUser(ctx, credential.ID)
			},
		).
		Step("insert_profile",
			func(ctx context.Context) error {
				err := p.uow.WithTransaction(ctx, func(txCtx context.Context) error {
					return p.userRepo.Create(txCtx, user)
				})
				return conflictOr("create_user", err, apperrors.ErrUsernameAlreadyExists)
			},
			nil,
		)

	if err := saga.Execute(ctx); err != nil {
		return nil, err
	}

	p.logger.Info("user provisioned", "user_id", user.ID, "role", user.Role)
	return user, nil
}
