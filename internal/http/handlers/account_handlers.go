package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/domain"
)

// AccountHandlers handles registration flow HTTP requests
type AccountHandlers struct {
	accountSvc domain.AccountService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

// SignupRequest represents a registration request
type SignupRequest struct {
	EmailOrPhone string `json:"email_or_phone" binding:"required"`
}

// VerifyRequest represents a code verification request
type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// ProfileRequest represents the profile completion request
type ProfileRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// PhotoRequest represents the profile photo request
type PhotoRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
}

// Signup handles user registration by email or phone
func (h *AccountHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountSvc.Signup(c.Request.Context(), req.EmailOrPhone)
	if err != nil {
		switch err {
		case domain.ErrUserAlreadyExists:
			respondError(c, http.StatusConflict, "User already exists")
		case domain.ErrInvalidChannel:
			respondError(c, http.StatusBadRequest, "Signup requires an email address or phone number")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respond(c, http.StatusCreated, "Verification code sent", tokenResponse(result))
}

// Verify handles verification code submission
func (h *AccountHandlers) Verify(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountSvc.VerifyCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch err {
		case domain.ErrCodeInvalid:
			respondError(c, http.StatusBadRequest, "Invalid or expired verification code")
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		default:
			respondError(c, http.StatusInternalServerError, "Verification failed")
		}
		return
	}

	respond(c, http.StatusOK, "Code verified", tokenResponse(result))
}

// ResendCode handles verification code re-delivery
func (h *AccountHandlers) ResendCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.accountSvc.ResendCode(c.Request.Context(), userID); err != nil {
		switch err {
		case domain.ErrCodeStillValid:
			respondError(c, http.StatusConflict, "A verification code is still valid")
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		case domain.ErrInvalidChannel:
			respondError(c, http.StatusBadRequest, "User has no delivery channel")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to resend code")
		}
		return
	}

	respond(c, http.StatusOK, "Verification code sent", nil)
}

// CompleteProfile handles the profile completion step
func (h *AccountHandlers) CompleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.accountSvc.CompleteProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch err {
		case domain.ErrPasswordMismatch:
			respondError(c, http.StatusBadRequest, "Passwords do not match")
		case domain.ErrWeakPassword:
			respondError(c, http.StatusBadRequest, "Password does not meet the strength policy")
		case domain.ErrInvalidProfileField:
			respondError(c, http.StatusBadRequest, "Names and username must be 3 to 30 characters and not purely numeric")
		case domain.ErrUsernameTaken:
			respondError(c, http.StatusConflict, "Username is already taken")
		case domain.ErrIllegalTransition:
			respondError(c, http.StatusBadRequest, "Account is not ready for this step")
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", gin.H{"auth_status": status})
}

// SetPhoto handles the profile photo step
func (h *AccountHandlers) SetPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.accountSvc.SetPhoto(c.Request.Context(), userID, req.PhotoURL)
	if err != nil {
		switch err {
		case domain.ErrIllegalTransition:
			respondError(c, http.StatusBadRequest, "Account is not ready for this step")
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to set photo")
		}
		return
	}

	respond(c, http.StatusOK, "Photo updated successfully", gin.H{"auth_status": status})
}

// Me handles getting the authenticated user profile
func (h *AccountHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.accountSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get user profile")
		return
	}

	respond(c, http.StatusOK, "Profile fetched", gin.H{
		"id":            user.ID,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"username":      user.Username,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"auth_type":     user.AuthType,
		"auth_status":   user.AuthStatus,
		"photo_url":     user.PhotoURL,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	})
}
