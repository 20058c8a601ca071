package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockPostRepository implements domain.PostRepository interface for testing
type MockPostRepository struct {
	CreateFunc   func(ctx context.Context, post *domain.Post) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Post, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]domain.Post, int64, error)
	UpdateFunc   func(ctx context.Context, post *domain.Post) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockPostRepository creates a new MockPostRepository with default behaviors
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{}
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	post.ID = 1
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPostRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return []domain.Post{}, 0, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PostRepository = (*MockPostRepository)(nil)
