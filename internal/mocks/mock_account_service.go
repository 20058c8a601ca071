package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	SignupFunc          func(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error)
	VerifyCodeFunc      func(ctx context.Context, userID uint, code string) (*domain.AuthResult, error)
	ResendCodeFunc      func(ctx context.Context, userID uint) error
	CompleteProfileFunc func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error)
	SetPhotoFunc        func(ctx context.Context, userID uint, photoURL string) (domain.AuthStatus, error)
	ProfileFunc         func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Signup(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, emailOrPhone)
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Email: emailOrPhone, AuthStatus: domain.StatusNew},
		AccessToken:  "access_token_test",
		RefreshToken: "refresh_token_test",
		SessionID:    "sess_test",
		ExpiresIn:    900,
	}, nil
}

func (m *MockAccountService) VerifyCode(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	if m.VerifyCodeFunc != nil {
		return m.VerifyCodeFunc(ctx, userID, code)
	}
	if code != "123456" {
		return nil, domain.ErrCodeInvalid
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: userID, AuthStatus: domain.StatusCodeVerified},
		AccessToken:  "access_token_test",
		RefreshToken: "refresh_token_test",
		SessionID:    "sess_test",
		ExpiresIn:    900,
	}, nil
}

func (m *MockAccountService) ResendCode(ctx context.Context, userID uint) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, userID)
	}
	return nil
}

func (m *MockAccountService) CompleteProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
	if m.CompleteProfileFunc != nil {
		return m.CompleteProfileFunc(ctx, userID, upd)
	}
	return domain.StatusDone, nil
}

func (m *MockAccountService) SetPhoto(ctx context.Context, userID uint, photoURL string) (domain.AuthStatus, error) {
	if m.SetPhotoFunc != nil {
		return m.SetPhotoFunc(ctx, userID, photoURL)
	}
	return domain.StatusPhotoStep, nil
}

func (m *MockAccountService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return &domain.User{ID: userID, Username: "testuser", AuthStatus: domain.StatusDone}, nil
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
