package services

import (
	"context"
	"errors"
	"time"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/domain/repositories"
	"github.com/rafabene/dentalclinic-backend/internal/domain/valueobjects"
)

// AuthSettings são os parâmetros de sessão lidos da configuração
type AuthSettings struct {
	WebAccessTTL             time.Duration
	AppAccessTTL             time.Duration
	RefreshTTL               time.Duration
	PasswordResetRedirectURL string
}

// AuthService contém os fluxos de autenticação do site (admin) e do app (paciente/dentista)
type AuthService struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.RefreshTokenRepository
	credentials ports.CredentialStore
	issuer      ports.TokenIssuer
	notifier    *NotificationService
	provisioner *userProvisioner
	settings    AuthSettings
	logger      ports.Logger
	now         func() time.Time
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	credentials ports.CredentialStore,
	issuer ports.TokenIssuer,
	uow ports.UnitOfWork,
	notifier *NotificationService,
	settings AuthSettings,
	logger ports.Logger,
) *AuthService {
	now := func() time.Time { return time.Now().UTC() }

	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		credentials: credentials,
		issuer:      issuer,
		notifier:    notifier,
		provisioner: &userProvisioner{
			userRepo:    userRepo,
			credentials: credentials,
			uow:         uow,
			logger:      logger,
			now:         now,
		},
		settings: settings,
		logger:   logger,
		now:      now,
	}
}

// LoginInput representa as credenciais enviadas no login
type LoginInput struct {
	Username string
	Password string
	FCMToken *string // apenas app
}

// LoginResult é o resultado de um login bem sucedido.
// RefreshToken só é preenchido no login do app.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *entities.User
}

// WebLogin autentica o painel web, restrito a admins
func (s *AuthService) WebLogin(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.authenticate(ctx, input, entities.RoleAdmin)
	if err != nil {
		return nil, err
	}

	token, err := s.issueAccessToken(user, s.settings.WebAccessTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("web login", "user_id", user.ID)
	return &LoginResult{AccessToken: token, User: user}, nil
}

// AppLogin autentica pacientes e dentistas e emite o par access + refresh token
func (s *AuthService) AppLogin(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.authenticate(ctx, input, entities.AppRoles...)
	if err != nil {
		return nil, err
	}

	if input.FCMToken != nil && *input.FCMToken != "" {
		if err := s.userRepo.UpdateFCMToken(ctx, user.ID, *input.FCMToken); err != nil {
			return nil, storeError("update_fcm_token", err)
		}
		user.FCMToken = input.FCMToken
	}

	accessToken, err := s.issueAccessToken(user, s.settings.AppAccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issuer.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	row := &entities.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		CreatedAt: s.now(),
	}
	if err := s.tokenRepo.Create(ctx, row); err != nil {
		return nil, storeError("create_refresh_token", err)
	}

	s.logger.Info("app login", "user_id", user.ID, "role", user.Role)
	return &LoginResult{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

// authenticate localiza o perfil, checa o papel antes da senha
// e só então consulta o provedor de credenciais.
func (s *AuthService) authenticate(ctx context.Context, input LoginInput, allowed ...entities.Role) (*entities.User, error) {
	user, err := s.userRepo.FindActiveByUsername(ctx, input.Username)
	if err != nil {
		return nil, storeError("find_user_by_username", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Role.In(allowed...) {
		s.logger.Warn("login with role not allowed", "user_id", user.ID, "role", user.Role)
		return nil, apperrors.ErrRoleNotAllowed
	}

	credential, err := s.credentials.GetUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.credentials.VerifyPassword(ctx, credential.Email, input.Password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issueAccessToken(user *entities.User, ttl time.Duration) (string, error) {
	return s.issuer.IssueAccessToken(ports.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, ttl)
}

// Register é o auto-cadastro do app: apenas pacientes e dentistas
func (s *AuthService) Register(ctx context.Context, input NewUserInput) (*entities.User, error) {
	user, err := s.provisioner.provision(ctx, input, entities.AppRoles...)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyUser(ctx, user.ID, entities.NotificationAccount,
		"Welcome", "Your account was created successfully.")

	return user, nil
}

// Refresh troca um refresh token válido por um novo access token.
// O refresh token não é rotacionado.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	row, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return "", storeError("find_refresh_token", err)
	}
	if row == nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	if row.IsExpired(s.settings.RefreshTTL, s.now()) {
		if err := s.tokenRepo.DeleteByToken(ctx, refreshToken); err != nil {
			s.logger.Warn("failed to delete expired refresh token", "user_id", row.UserID, "error", err)
		}
		return "", apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindActiveByID(ctx, row.UserID)
	if err != nil {
		return "", storeError("find_user", err)
	}
	if user == nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	return s.issueAccessToken(user, s.settings.AppAccessTTL)
}

// Logout invalida o refresh token. Idempotente.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.DeleteByToken(ctx, refreshToken); err != nil {
		return storeError("delete_refresh_token", err)
	}
	return nil
}

// ChangePasswordInput representa a troca de senha com a senha atual
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// ChangePassword valida a senha atual no provedor e grava a nova
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.CurrentPassword == input.NewPassword {
		return apperrors.ErrSamePassword
	}

	if !isUUID(input.UserID) {
		return apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindActiveByID(ctx, input.UserID)
	if err != nil {
		return storeError("find_user", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	credential, err := s.credentials.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}

	if err := s.credentials.VerifyPassword(ctx, credential.Email, input.CurrentPassword); err != nil {
		return err
	}

	if err := s.credentials.UpdatePassword(ctx, user.ID, input.NewPassword); err != nil {
		return err
	}

	s.logger.Info("password changed", "user_id", user.ID)
	s.notifier.NotifyUser(ctx, user.ID, entities.NotificationAccount,
		"Password changed", "Your password was changed.")
	return nil
}

// ForgotPassword pede ao provedor o envio do email de recuperação.
// O email precisa pertencer a um perfil ativo.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return apperrors.ErrInvalidEmail
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, normalized.String())
	if err != nil {
		return storeError("find_user_by_email", err)
	}
	if user == nil {
		return apperrors.ErrEmailNotRegistered
	}

	return s.credentials.SendPasswordReset(ctx, normalized.String(), s.settings.PasswordResetRedirectURL)
}

// ResetPassword conclui a recuperação com o token emitido pelo provedor
func (s *AuthService) ResetPassword(ctx context.Context, accessToken, newPassword string) error {
	return s.credentials.ResetPassword(ctx, accessToken, newPassword)
}
