package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio da gestão de usuários pelo admin
type UserService struct {
	userRepo    repositories.UserRepository
	credentials ports.CredentialStore
	provisioner *userProvisioner
	audit       *ActivityRecorder
	notifier    *NotificationService
	logger      ports.Logger
	now         func() time.Time
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	credentials ports.CredentialStore,
	uow ports.UnitOfWork,
	audit *ActivityRecorder,
	notifier *NotificationService,
	logger ports.Logger,
) *UserService {
	now := func() time.Time { return time.Now().UTC() }

	return &UserService{
		userRepo:    userRepo,
		credentials: credentials,
		provisioner: &userProvisioner{
			userRepo:    userRepo,
			credentials: credentials,
			uow:         uow,
			logger:      logger,
			now:         now,
		},
		audit:    audit,
		notifier: notifier,
		logger:   logger,
		now:      now,
	}
}

// ListUsers lista usuários ativos com filtros e paginação
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	if filters.Role != nil && !filters.Role.IsValid() {
		return nil, 0, apperrors.ErrInvalidRole
	}

	users, total, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, storeError("list_users", err)
	}
	return users, total, nil
}

// GetUser busca um usuário por ID, inclusive deletado
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find_user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// AddUser cria um usuário de qualquer papel
func (s *UserService) AddUser(ctx context.Context, adminID string, input NewUserInput) (*entities.User, error) {
	user, err := s.provisioner.provision(ctx, input, entities.RoleAdmin, entities.RolePatient, entities.RoleDentist)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, entities.ActionCreate, tableUsers, user.ID,
		"created user "+user.Username, snapshotUser(user))
	s.notifier.NotifyUser(ctx, user.ID, entities.NotificationAccount,
		"Welcome", "An account was created for you.")

	return user, nil
}

// EditUser substitui os dados de perfil de um usuário ativo.
// Troca de email passa pelo provedor de credenciais antes do banco.
func (s *UserService) EditUser(ctx context.Context, adminID, id string, input ProfileInput) (*entities.User, error) {
	username, email, err := normalizeProfile(input)
	if err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.ErrInvalidName
	}

	user, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.ensureAvailable(ctx, username, email, user.ID); err != nil {
		return nil, err
	}

	before := snapshotUser(user)
	previousEmail := user.Email

	user.Username = username
	user.Email = email
	user.Role = input.Role
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.ContactNumber = input.ContactNumber
	user.Address = input.Address
	user.UpdatedAt = s.now()

	saga := NewSaga(s.logger)
	if !previousEmail.Equals(email) {
		saga.Step("update_credential_email",
			func(ctx context.Context) error {
				return s.credentials.UpdateEmail(ctx, user.ID, email.String())
			},
			func(ctx context.Context) error {
				return s.credentials.UpdateEmail(ctx, user.ID, previousEmail.String())
			},
		)
	}
	saga.Step("update_profile",
		func(ctx context.Context) error {
			return conflictOr("update_user", s.userRepo.Update(ctx, user), apperrors.ErrUsernameAlreadyExists)
		},
		nil,
	)

	if err := saga.Execute(ctx); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, entities.ActionUpdate, tableUsers, user.ID,
		"updated user "+user.Username, before)

	return user, nil
}

// DeleteUser faz soft delete de um usuário ativo
func (s *UserService) DeleteUser(ctx context.Context, adminID, id string) (*entities.User, error) {
	user, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}

	before := snapshotUser(user)

	user.SoftDelete(s.now())
	if err := s.userRepo.SoftDelete(ctx, user.ID, *user.DeletedAt); err != nil {
		return nil, storeError("delete_user", err)
	}

	// sem a credencial o login é barrado no provedor e o email fica livre para
	// um novo cadastro; a falha não desfaz o soft delete
	if err := s.credentials.DeleteUser(ctx, user.ID); err != nil {
		s.logger.Error("failed to delete credential of deleted user", "user_id", user.ID, "error", err)
	}

	s.audit.Record(ctx, adminID, entities.ActionDelete, tableUsers, user.ID,
		"deleted user "+user.Username, before)

	return user, nil
}

func (s *UserService) findActive(ctx context.Context, id string) (*entities.User, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, storeError("find_user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
