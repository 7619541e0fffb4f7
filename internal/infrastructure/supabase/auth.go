package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// AuthClient implementa ports.CredentialStore sobre a API do GoTrue
type AuthClient struct {
	client *Client
}

// NewAuthClient cria o adaptador do provedor de credenciais
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

var _ ports.CredentialStore = (*AuthClient)(nil)

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *AuthClient) CreateUser(ctx context.Context, email, password string) (*ports.Credential, error) {
	var user authUser
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/admin/users",
		body: map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
		},
	}, &user)
	if err != nil {
		if isAPICode(err, "email_exists") || hasStatus(err, http.StatusUnprocessableEntity) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Upstream("auth.create_user", err)
	}

	return &ports.Credential{ID: user.ID, Email: user.Email}, nil
}

func (a *AuthClient) GetUser(ctx context.Context, id string) (*ports.Credential, error) {
	var user authUser
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/admin/users/" + url.PathEscape(id),
	}, &user)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Upstream("auth.get_user", err)
	}

	return &ports.Credential{ID: user.ID, Email: user.Email}, nil
}

func (a *AuthClient) DeleteUser(ctx context.Context, id string) error {
	err := a.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/auth/v1/admin/users/" + url.PathEscape(id),
	}, nil)
	if err != nil && !hasStatus(err, http.StatusNotFound) {
		return apperrors.Upstream("auth.delete_user", err)
	}
	return nil
}

// VerifyPassword usa o grant password do GoTrue; o token emitido é descartado
func (a *AuthClient) VerifyPassword(ctx context.Context, email, password string) error {
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		apiKey: a.client.anonKey,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, nil)
	if err != nil {
		if hasStatus(err, http.StatusBadRequest) || hasStatus(err, http.StatusUnauthorized) {
			return apperrors.ErrInvalidCredentials
		}
		return apperrors.Upstream("auth.verify_password", err)
	}
	return nil
}

func (a *AuthClient) UpdatePassword(ctx context.Context, id, newPassword string) error {
	return a.updateUser(ctx, "auth.update_password", id, map[string]any{"password": newPassword})
}

func (a *AuthClient) UpdateEmail(ctx context.Context, id, email string) error {
	err := a.updateUser(ctx, "auth.update_email", id, map[string]any{"email": email, "email_confirm": true})
	if isAPICode(err, "email_exists") {
		return apperrors.ErrEmailAlreadyExists
	}
	return err
}

func (a *AuthClient) updateUser(ctx context.Context, op, id string, attrs map[string]any) error {
	err := a.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/auth/v1/admin/users/" + url.PathEscape(id),
		body:   attrs,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "email_exists" {
			return err
		}
		if hasStatus(err, http.StatusNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Upstream(op, err)
	}
	return nil
}

// SendPasswordReset dispara o email de recuperação do próprio provedor
func (a *AuthClient) SendPasswordReset(ctx context.Context, email, redirectURL string) error {
	var query url.Values
	if redirectURL != "" {
		query = url.Values{"redirect_to": {redirectURL}}
	}

	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/recover",
		query:  query,
		apiKey: a.client.anonKey,
		body:   map[string]string{"email": email},
	}, nil)
	if err != nil {
		return apperrors.Upstream("auth.recover", err)
	}
	return nil
}

// ResetPassword troca o access token de recuperação (emitido pelo provedor) pela nova senha
func (a *AuthClient) ResetPassword(ctx context.Context, accessToken, newPassword string) error {
	err := a.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/auth/v1/user",
		apiKey: a.client.anonKey,
		bearer: accessToken,
		body:   map[string]string{"password": newPassword},
	}, nil)
	if err != nil {
		if hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.Upstream("auth.reset_password", err)
	}
	return nil
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func isAPICode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
