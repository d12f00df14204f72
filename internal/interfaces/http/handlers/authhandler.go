package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	authUsecases "github.com/webloom-dev/webloom/internal/application/auth/usecases"
	"github.com/webloom-dev/webloom/internal/shared/constants"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// AuthHandler exposes registration, session, and password recovery
// endpoints.
type AuthHandler struct {
	registerUC       *authUsecases.RegisterUseCase
	loginUC          *authUsecases.LoginUseCase
	logoutUC         *authUsecases.LogoutUseCase
	refreshTokenUC   *authUsecases.RefreshTokenUseCase
	forgotPasswordUC *authUsecases.ForgotPasswordUseCase
	resetPasswordUC  *authUsecases.ResetPasswordUseCase
	getProfileUC     *authUsecases.GetProfileUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC *authUsecases.RegisterUseCase,
	loginUC *authUsecases.LoginUseCase,
	logoutUC *authUsecases.LogoutUseCase,
	refreshTokenUC *authUsecases.RefreshTokenUseCase,
	forgotPasswordUC *authUsecases.ForgotPasswordUseCase,
	resetPasswordUC *authUsecases.ResetPasswordUseCase,
	getProfileUC *authUsecases.GetProfileUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		logoutUC:         logoutUC,
		refreshTokenUC:   refreshTokenUC,
		forgotPasswordUC: forgotPasswordUC,
		resetPasswordUC:  resetPasswordUC,
		getProfileUC:     getProfileUC,
		logger:           logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.registerUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.loginUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged in successfully", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), sessionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out successfully", nil)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.refreshTokenUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", response)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var request dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	if err := h.forgotPasswordUC.Execute(c.Request.Context(), request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Always the same answer so the endpoint cannot be used to probe for
	// registered addresses.
	utils.SuccessResponse(c, http.StatusOK, "if the address is registered, a reset email has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var request dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset successfully", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userSID := c.GetString(constants.ContextKeyUserSID)
	if userSID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.getProfileUC.Execute(c.Request.Context(), userSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
