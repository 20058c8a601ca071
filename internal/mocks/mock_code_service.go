package mocks

import (
	"context"
	"time"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockCodeService implements domain.CodeService interface for testing
type MockCodeService struct {
	IssueFunc          func(ctx context.Context, user *domain.User, channel domain.AuthType) (*domain.VerificationCode, error)
	CheckFunc          func(ctx context.Context, userID uint, code string) error
	HasOutstandingFunc func(ctx context.Context, userID uint) (bool, error)
}

// NewMockCodeService creates a new MockCodeService with default behaviors
func NewMockCodeService() *MockCodeService {
	return &MockCodeService{}
}

func (m *MockCodeService) Issue(ctx context.Context, user *domain.User, channel domain.AuthType) (*domain.VerificationCode, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user, channel)
	}
	// Default behavior: return a mock code
	return &domain.VerificationCode{
		UserID:    user.ID,
		Channel:   channel,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil
}

func (m *MockCodeService) Check(ctx context.Context, userID uint, code string) error {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, userID, code)
	}
	// Default behavior: accept "123456"
	if code == "123456" {
		return nil
	}
	return domain.ErrCodeInvalid
}

func (m *MockCodeService) HasOutstanding(ctx context.Context, userID uint) (bool, error) {
	if m.HasOutstandingFunc != nil {
		return m.HasOutstandingFunc(ctx, userID)
	}
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.CodeService = (*MockCodeService)(nil)
