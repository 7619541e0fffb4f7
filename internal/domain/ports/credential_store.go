package ports

import "context"

// Credential é o registro de login mantido pelo provedor de identidade
type Credential struct {
	ID    string
	Email string
}

// CredentialStore é a única autoridade sobre senhas.
// VerifyPassword retorna errors.ErrInvalidCredentials quando a senha não confere.
type CredentialStore interface {
	CreateUser(ctx context.Context, email, password string) (*Credential, error)
	GetUser(ctx context.Context, id string) (*Credential, error)
	DeleteUser(ctx context.Context, id string) error
	VerifyPassword(ctx context.Context, email, password string) error
	UpdatePassword(ctx context.Context, id, newPassword string) error
	UpdateEmail(ctx context.Context, id, email string) error
	SendPasswordReset(ctx context.Context, email, redirectURL string) error
	ResetPassword(ctx context.Context, accessToken, newPassword string) error
}
