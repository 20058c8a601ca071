package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc          func(ctx context.Context, identifier, password string) (*domain.AuthResult, error)
	RefreshFunc        func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, refreshToken string) error
	ForgotPasswordFunc func(ctx context.Context, identifier string) (*domain.AuthResult, error)
	ResetPasswordFunc  func(ctx context.Context, userID uint, password, confirm string) (*domain.AuthResult, error)
	IssuePairFunc      func(ctx context.Context, user *domain.User) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, identifier string) (*domain.AuthResult, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, identifier)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) ResetPassword(ctx context.Context, userID uint, password, confirm string) (*domain.AuthResult, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, userID, password, confirm)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) IssuePair(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	if m.IssuePairFunc != nil {
		return m.IssuePairFunc(ctx, user)
	}
	// Default behavior: deterministic pair bound to the user
	return &domain.AuthResult{
		User:         user,
		AccessToken:  "access_token_test",
		RefreshToken: "refresh_token_test",
		SessionID:    "sess_test",
		ExpiresIn:    900,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
