package mocks

import (
	"context"
	"time"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockCodeRepository implements domain.CodeRepository interface for testing
type MockCodeRepository struct {
	ReplaceFunc        func(ctx context.Context, code *domain.VerificationCode) error
	ConfirmFunc        func(ctx context.Context, userID uint, code string, now time.Time) (*domain.VerificationCode, error)
	HasOutstandingFunc func(ctx context.Context, userID uint, now time.Time) (bool, error)
}

// NewMockCodeRepository creates a new MockCodeRepository with default behaviors
func NewMockCodeRepository() *MockCodeRepository {
	return &MockCodeRepository{}
}

func (m *MockCodeRepository) Replace(ctx context.Context, code *domain.VerificationCode) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, code)
	}
	return nil
}

func (m *MockCodeRepository) Confirm(ctx context.Context, userID uint, code string, now time.Time) (*domain.VerificationCode, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, userID, code, now)
	}
	return nil, domain.ErrCodeInvalid
}

func (m *MockCodeRepository) HasOutstanding(ctx context.Context, userID uint, now time.Time) (bool, error) {
	if m.HasOutstandingFunc != nil {
		return m.HasOutstandingFunc(ctx, userID, now)
	}
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.CodeRepository = (*MockCodeRepository)(nil)
