package domain

import "errors"

// Account errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserAlreadyExists      = errors.New("email or phone number already registered")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrRegistrationIncomplete = errors.New("registration is not completed")
	ErrInvalidChannel         = errors.New("neither email nor phone number is set")
	ErrIllegalTransition      = errors.New("illegal account status transition")
	ErrInvalidProfileField    = errors.New("profile field is invalid")
)

// Password errors
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password does not satisfy the strength policy")
)

// Verification code errors
var (
	ErrCodeInvalid    = errors.New("verification code is wrong or expired")
	ErrCodeStillValid = errors.New("verification code is still valid")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Content errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("not the author of this resource")
	ErrCaptionTooLong  = errors.New("caption exceeds the maximum length")
)

// Engagement errors
var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized access")
)
