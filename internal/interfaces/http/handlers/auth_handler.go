package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/middleware"
	"laundry-scout.backend/internal/interfaces/http/response"
	"laundry-scout.backend/pkg/logger"
)

type AuthService interface {
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RefreshToken(ctx context.Context, sessionID, refreshToken string) (*entities.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetAdminByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error)
	ChangePassword(ctx context.Context, adminID uuid.UUID, input *entities.ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login handles admin login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized,
				domainerrors.CodeInvalidCredentials, "Invalid username or password", err))
			return
		}
		response.Error(c, err)
		return
	}

	setAuthCookies(c, authResponse.AccessToken, authResponse.RefreshToken)
	response.Success(c, http.StatusOK, authResponse)
}

// setAuthCookies mirrors the token pair into httpOnly cookies for
// browser clients that prefer them over the Authorization header.
func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie("token", accessToken, 3600*24, "/", "", false, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", false, true)
}

// RefreshToken exchanges a refresh token for a fresh pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		SessionID    string `json:"sessionId" binding:"required"`
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.RefreshToken(c.Request.Context(), input.SessionID, input.RefreshToken)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid or expired refresh token"))
		return
	}

	setAuthCookies(c, authResponse.AccessToken, authResponse.RefreshToken)
	response.Success(c, http.StatusOK, authResponse)
}

// Logout drops the server-side session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	_ = c.ShouldBindJSON(&input)

	if err := h.authUsecase.Logout(c.Request.Context(), input.SessionID); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated admin
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	admin, err := h.authUsecase.GetAdminByID(c.Request.Context(), adminID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Admin not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// ChangePassword rotates the password of the authenticated admin
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), adminID, &input); err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized,
				domainerrors.CodeInvalidCredentials, "Current password is incorrect", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// ForgotPassword issues a password reset token
// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input entities.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token, err := h.authUsecase.ForgotPassword(c.Request.Context(), input.Email)
	if err != nil {
		// An unknown email gets the same answer as a known one.
		if err == domainerrors.ErrNotFound {
			response.Success(c, http.StatusOK, gin.H{
				"message": "If the email is registered, a reset link has been sent",
			})
			return
		}
		response.Error(c, err)
		return
	}

	// TODO: deliver the token by email once an SMTP provider is configured.
	// Until then the issuance is logged, masked the same way as push
	// device tokens, so the flow stays observable.
	logger.Info(c.Request.Context(), "password reset token issued",
		zap.String("email", input.Email),
		zap.String("token", entities.MaskToken(token)),
	)

	response.Success(c, http.StatusOK, gin.H{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// ResetPassword consumes a reset token and sets a new password
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), &input); err != nil {
		if err == domainerrors.ErrTokenExpired {
			response.Error(c, domainerrors.BadRequest("Invalid or expired reset token"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password has been reset"})
}
