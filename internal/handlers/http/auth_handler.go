package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/dto"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

// AuthHandler lida com login, cadastro, sessão e senha
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// WebLogin autentica um admin no painel web
//
//	@Summary	Login do painel web (somente admin)
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.WebLoginResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/auth/website/login [post]
func (h *AuthHandler) WebLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.WebLogin(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWebLoginResponse(result))
}

// AppLogin autentica paciente ou dentista no aplicativo
//
//	@Summary	Login do aplicativo (paciente ou dentista)
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.AppLoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.AppLoginResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/auth/app/login [post]
func (h *AuthHandler) AppLogin(c *gin.Context) {
	var req dto.AppLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.AppLogin(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppLoginResponse(result))
}

// Register cadastra um paciente ou dentista
//
//	@Summary	Cadastro pelo aplicativo
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"Perfil e senha"
//	@Success	201		{object}	dto.RegisterResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/auth/app/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{User: dto.ToUserResponse(user)})
}

// RefreshToken emite um novo access token a partir do refresh token
//
//	@Summary	Renova o access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RefreshTokenRequest	true	"Refresh token"
//	@Success	200		{object}	dto.AccessTokenResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{AccessToken: accessToken})
}

// Logout apaga o refresh token; repetir a chamada não é erro
//
//	@Summary	Encerra a sessão do aplicativo
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RefreshTokenRequest	true	"Refresh token"
//	@Success	200		{object}	dto.MessageResponse
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.logged_out"))
}

// ChangePassword troca a senha validando a senha atual
//
//	@Summary	Troca a senha
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.ChangePasswordRequest	true	"Senha atual e nova"
//	@Success	200		{object}	dto.MessageResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/change-password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), services.ChangePasswordInput{
		UserID:          req.UserID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.password_changed"))
}

// ForgotPassword dispara o email de redefinição de senha
//
//	@Summary	Envia o email de redefinição
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.ForgotPasswordRequest	true	"Email"
//	@Success	200		{object}	dto.MessageResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.password_reset_sent"))
}

// ResetPassword troca a senha com o token do link de redefinição
//
//	@Summary	Redefine a senha
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.ResetPasswordRequest	true	"Token e nova senha"
//	@Success	200		{object}	dto.MessageResponse
//	@Router		/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.AccessToken, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.password_reset"))
}
