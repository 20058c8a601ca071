package mocks

import (
	"strings"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc     func(password string) (string, error)
	VerifyFunc   func(hashedPassword, password string) bool
	ValidateFunc func(password string) error
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

func (m *MockPasswordService) Validate(password string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(password)
	}
	// Default behavior: reject passwords marked weak or too short
	if len(password) < 8 || strings.Contains(password, "weak") {
		return domain.ErrWeakPassword
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
