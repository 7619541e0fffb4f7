package dto

import (
	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// LoginRequest é o corpo do login web (admin)
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AppLoginRequest é o corpo do login do aplicativo
type AppLoginRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FCMToken *string `json:"fcmToken" binding:"omitempty,max=4096"`
}

// RegisterRequest é o cadastro de paciente ou dentista pelo aplicativo
type RegisterRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=30"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6,max=72"`
	UserType      string  `json:"usertype" binding:"required,oneof=patient dentist"`
	FirstName     string  `json:"firstname" binding:"required,max=100"`
	LastName      string  `json:"lastname" binding:"required,max=100"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=30"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
}

// ToInput converte a requisição no input do serviço
func (r RegisterRequest) ToInput() services.NewUserInput {
	return services.NewUserInput{
		ProfileInput: services.ProfileInput{
			Username:      r.Username,
			Email:         r.Email,
			Role:          entities.Role(r.UserType),
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			ContactNumber: r.ContactNumber,
			Address:       r.Address,
		},
		Password: r.Password,
	}
}

// RefreshTokenRequest carrega o refresh token opaco (refresh e logout)
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest é o corpo de troca de senha
type ChangePasswordRequest struct {
	UserID          string `json:"userId" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}

// ForgotPasswordRequest pede o envio do email de redefinição
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest troca a senha com o token emitido pelo provedor
type ResetPasswordRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

// SessionUser é o resumo do usuário devolvido no login web
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	UserType string `json:"usertype"`
}

// WebLoginResponse é a resposta do login web
type WebLoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// AppLoginResponse é a resposta do login do aplicativo
type AppLoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RegisterResponse devolve o perfil criado
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// AccessTokenResponse é a resposta do refresh
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ToWebLoginResponse monta a resposta do login web
func ToWebLoginResponse(result *services.LoginResult) WebLoginResponse {
	return WebLoginResponse{
		Token: result.AccessToken,
		User: SessionUser{
			ID:       result.User.ID,
			Username: result.User.Username,
			UserType: string(result.User.Role),
		},
	}
}

// ToAppLoginResponse monta a resposta do login do aplicativo
func ToAppLoginResponse(result *services.LoginResult) AppLoginResponse {
	return AppLoginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         ToUserResponse(result.User),
	}
}
