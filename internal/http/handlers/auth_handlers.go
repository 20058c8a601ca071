package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/domain"
)

// AuthHandlers handles session HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents a login request. The identifier may be a
// username, email address or phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents a password reset initiation request
type ForgotPasswordRequest struct {
	EmailOrPhone string `json:"email_or_phone" binding:"required"`
}

// ResetPasswordRequest represents the new password submission
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		case domain.ErrInvalidCredentials:
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		case domain.ErrRegistrationIncomplete:
			respondError(c, http.StatusForbidden, "Registration is not complete")
		default:
			respondError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	respond(c, http.StatusOK, "Logged in successfully", tokenResponse(result))
}

// Refresh handles access token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenMalformed:
			respondError(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		case domain.ErrSessionNotFound, domain.ErrSessionExpired:
			respondError(c, http.StatusUnauthorized, "Session expired")
		default:
			respondError(c, http.StatusInternalServerError, "Token refresh failed")
		}
		return
	}

	respond(c, http.StatusOK, "Token refreshed", gin.H{
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   result.ExpiresIn,
	})
}

// Logout revokes the session behind the presented refresh token
func (h *AuthHandlers) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenMalformed:
			respondError(c, http.StatusUnauthorized, "Invalid refresh token")
		case domain.ErrSessionNotFound:
			respondError(c, http.StatusUnauthorized, "Session already revoked")
		default:
			respondError(c, http.StatusInternalServerError, "Logout failed")
		}
		return
	}

	respond(c, http.StatusOK, "You have successfully logged out", nil)
}

// ForgotPassword issues a reset code to the account's delivery channel
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.ForgotPassword(c.Request.Context(), req.EmailOrPhone)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		case domain.ErrInvalidChannel:
			respondError(c, http.StatusBadRequest, "Password reset requires an email address or phone number")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to start password reset")
		}
		return
	}

	respond(c, http.StatusOK, "Verification code sent", tokenResponse(result))
}

// ResetPassword sets a new password for the authenticated user
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.ResetPassword(c.Request.Context(), userID, req.Password, req.ConfirmPassword)
	if err != nil {
		switch err {
		case domain.ErrPasswordMismatch:
			respondError(c, http.StatusBadRequest, "Passwords do not match")
		case domain.ErrWeakPassword:
			respondError(c, http.StatusBadRequest, "Password does not meet the strength policy")
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	respond(c, http.StatusOK, "Password reset successfully", tokenResponse(result))
}
