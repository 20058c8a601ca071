package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	TouchLastLogin(ctx context.Context, userID uint) error
}

// CodeRepository defines verification code data access. The store guarantees
// at most one unconfirmed code per user via a partial unique index.
type CodeRepository interface {
	// Replace removes the user's unconfirmed codes and inserts code in a
	// single transaction.
	Replace(ctx context.Context, code *VerificationCode) error
	// Confirm marks the matching unconfirmed, unexpired code as confirmed.
	// Returns ErrCodeInvalid when no such code exists.
	Confirm(ctx context.Context, userID uint, code string, now time.Time) (*VerificationCode, error)
	// HasOutstanding reports whether an unconfirmed, unexpired code exists.
	HasOutstanding(ctx context.Context, userID uint, now time.Time) (bool, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// PostRepository defines post data access operations
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, int64, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uint) error
}

// CommentRepository defines comment data access operations
type CommentRepository interface {
	Create(ctx context.Context, comment *PostComment) error
	FindByID(ctx context.Context, id uint) (*PostComment, error)
	ListByPost(ctx context.Context, postID uint) ([]PostComment, error)
	Delete(ctx context.Context, id uint) error
}

// LikeRepository defines like data access operations. Create operations
// surface ErrAlreadyLiked when the store's uniqueness constraint trips;
// delete operations surface ErrNotLiked when no record matched.
type LikeRepository interface {
	CreatePostLike(ctx context.Context, like *PostLike) error
	DeletePostLike(ctx context.Context, postID, authorID uint) error
	ListPostLikes(ctx context.Context, postID uint) ([]PostLike, error)
	CreateCommentLike(ctx context.Context, like *CommentLike) error
	DeleteCommentLike(ctx context.Context, commentID, authorID uint) error
	ListCommentLikes(ctx context.Context, commentID uint) ([]CommentLike, error)
}

// CodeService defines the verification code store operations
type CodeService interface {
	// Issue generates a fresh code for the user on the given channel,
	// replacing any stale unconfirmed code, and triggers delivery.
	// Delivery failure does not fail the issue.
	Issue(ctx context.Context, user *User, channel AuthType) (*VerificationCode, error)
	// Check consumes a submitted code. A confirmed code can never pass
	// Check again.
	Check(ctx context.Context, userID uint, code string) error
	HasOutstanding(ctx context.Context, userID uint) (bool, error)
}

// AccountService governs the signup state machine
type AccountService interface {
	Signup(ctx context.Context, emailOrPhone string) (*AuthResult, error)
	VerifyCode(ctx context.Context, userID uint, code string) (*AuthResult, error)
	ResendCode(ctx context.Context, userID uint) error
	CompleteProfile(ctx context.Context, userID uint, upd ProfileUpdate) (AuthStatus, error)
	SetPhoto(ctx context.Context, userID uint, photoURL string) (AuthStatus, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// AuthService mints, refreshes and revokes session credentials
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, identifier string) (*AuthResult, error)
	ResetPassword(ctx context.Context, userID uint, password, confirm string) (*AuthResult, error)
	// IssuePair mints a new session with an access and refresh token for
	// the user.
	IssuePair(ctx context.Context, user *User) (*AuthResult, error)
}

// PostService defines content business logic
type PostService interface {
	CreatePost(ctx context.Context, authorID uint, imageURL, caption string) (*Post, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]Post, int64, error)
	GetPost(ctx context.Context, id uint) (*Post, error)
	UpdatePost(ctx context.Context, actorID, postID uint, imageURL, caption string) (*Post, error)
	DeletePost(ctx context.Context, actorID uint, actorRole string, postID uint) error
	CreateComment(ctx context.Context, authorID, postID uint, parentID *uint, body string) (*PostComment, error)
	ListComments(ctx context.Context, postID uint) ([]PostComment, error)
	GetComment(ctx context.Context, id uint) (*PostComment, error)
	DeleteComment(ctx context.Context, actorID uint, actorRole string, commentID uint) error
}

// EngagementService defines the like/unlike toggle
type EngagementService interface {
	LikePost(ctx context.Context, authorID, postID uint) error
	UnlikePost(ctx context.Context, authorID, postID uint) error
	PostLikes(ctx context.Context, postID uint) ([]PostLike, error)
	LikeComment(ctx context.Context, authorID, commentID uint) error
	UnlikeComment(ctx context.Context, authorID, commentID uint) error
	CommentLikes(ctx context.Context, commentID uint) ([]CommentLike, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
	// Validate applies the strength policy, returning ErrWeakPassword on
	// rejection.
	Validate(password string) error
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
