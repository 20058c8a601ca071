package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockLikeRepository implements domain.LikeRepository interface for testing
type MockLikeRepository struct {
	CreatePostLikeFunc    func(ctx context.Context, like *domain.PostLike) error
	DeletePostLikeFunc    func(ctx context.Context, postID, authorID uint) error
	ListPostLikesFunc     func(ctx context.Context, postID uint) ([]domain.PostLike, error)
	CreateCommentLikeFunc func(ctx context.Context, like *domain.CommentLike) error
	DeleteCommentLikeFunc func(ctx context.Context, commentID, authorID uint) error
	ListCommentLikesFunc  func(ctx context.Context, commentID uint) ([]domain.CommentLike, error)
}

// NewMockLikeRepository creates a new MockLikeRepository with default behaviors
func NewMockLikeRepository() *MockLikeRepository {
	return &MockLikeRepository{}
}

func (m *MockLikeRepository) CreatePostLike(ctx context.Context, like *domain.PostLike) error {
	if m.CreatePostLikeFunc != nil {
		return m.CreatePostLikeFunc(ctx, like)
	}
	like.ID = 1
	return nil
}

func (m *MockLikeRepository) DeletePostLike(ctx context.Context, postID, authorID uint) error {
	if m.DeletePostLikeFunc != nil {
		return m.DeletePostLikeFunc(ctx, postID, authorID)
	}
	return nil
}

func (m *MockLikeRepository) ListPostLikes(ctx context.Context, postID uint) ([]domain.PostLike, error) {
	if m.ListPostLikesFunc != nil {
		return m.ListPostLikesFunc(ctx, postID)
	}
	return []domain.PostLike{}, nil
}

func (m *MockLikeRepository) CreateCommentLike(ctx context.Context, like *domain.CommentLike) error {
	if m.CreateCommentLikeFunc != nil {
		return m.CreateCommentLikeFunc(ctx, like)
	}
	like.ID = 1
	return nil
}

func (m *MockLikeRepository) DeleteCommentLike(ctx context.Context, commentID, authorID uint) error {
	if m.DeleteCommentLikeFunc != nil {
		return m.DeleteCommentLikeFunc(ctx, commentID, authorID)
	}
	return nil
}

func (m *MockLikeRepository) ListCommentLikes(ctx context.Context, commentID uint) ([]domain.CommentLike, error) {
	if m.ListCommentLikesFunc != nil {
		return m.ListCommentLikesFunc(ctx, commentID)
	}
	return []domain.CommentLike{}, nil
}

// Compile-time interface compliance verification
var _ domain.LikeRepository = (*MockLikeRepository)(nil)
