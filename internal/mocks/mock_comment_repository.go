package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockCommentRepository implements domain.CommentRepository interface for testing
type MockCommentRepository struct {
	CreateFunc     func(ctx context.Context, comment *domain.PostComment) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.PostComment, error)
	ListByPostFunc func(ctx context.Context, postID uint) ([]domain.PostComment, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

// NewMockCommentRepository creates a new MockCommentRepository with default behaviors
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.PostComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.PostComment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]domain.PostComment, error) {
	if m.ListByPostFunc != nil {
		return m.ListByPostFunc(ctx, postID)
	}
	return []domain.PostComment{}, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CommentRepository = (*MockCommentRepository)(nil)
