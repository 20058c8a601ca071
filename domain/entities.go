package domain

import "time"

// AuthType identifies the channel an account signed up through.
type AuthType string

const (
	ViaEmail AuthType = "via_email"
	ViaPhone AuthType = "via_phone"
)

// User represents an account in the system
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	AuthType     AuthType
	AuthStatus   AuthStatus
	PhotoURL     string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VerificationCode is a time-boxed one-time code bound to a user and channel.
// It is logically inert once confirmed or expired.
type VerificationCode struct {
	ID        uint
	UserID    uint
	Channel   AuthType
	Code      string
	Confirmed bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Session is the server-side record backing an issued token pair. Deleting it
// revokes the pair's refresh token.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult represents the outcome of an operation that issues credentials
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ProfileUpdate carries the required profile fields that complete signup.
type ProfileUpdate struct {
	FirstName       string
	LastName        string
	Username        string
	Password        string
	ConfirmPassword string
}

// Post is user content with an image and a bounded caption
type Post struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostComment belongs to one post; ParentID threads replies under another
// comment of the same post.
type PostComment struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	AuthorID  uint      `json:"author_id"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostLike records that an author liked a post, at most once
type PostLike struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike records that an author liked a comment, at most once
type CommentLike struct {
	ID        uint      `json:"id"`
	CommentID uint      `json:"comment_id"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
