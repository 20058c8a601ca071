package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockEngagementService implements domain.EngagementService interface for testing
type MockEngagementService struct {
	LikePostFunc      func(ctx context.Context, authorID, postID uint) error
	UnlikePostFunc    func(ctx context.Context, authorID, postID uint) error
	PostLikesFunc     func(ctx context.Context, postID uint) ([]domain.PostLike, error)
	LikeCommentFunc   func(ctx context.Context, authorID, commentID uint) error
	UnlikeCommentFunc func(ctx context.Context, authorID, commentID uint) error
	CommentLikesFunc  func(ctx context.Context, commentID uint) ([]domain.CommentLike, error)
}

// NewMockEngagementService creates a new MockEngagementService with default behaviors
func NewMockEngagementService() *MockEngagementService {
	return &MockEngagementService{}
}

func (m *MockEngagementService) LikePost(ctx context.Context, authorID, postID uint) error {
	if m.LikePostFunc != nil {
		return m.LikePostFunc(ctx, authorID, postID)
	}
	return nil
}

func (m *MockEngagementService) UnlikePost(ctx context.Context, authorID, postID uint) error {
	if m.UnlikePostFunc != nil {
		return m.UnlikePostFunc(ctx, authorID, postID)
	}
	return nil
}

func (m *MockEngagementService) PostLikes(ctx context.Context, postID uint) ([]domain.PostLike, error) {
	if m.PostLikesFunc != nil {
		return m.PostLikesFunc(ctx, postID)
	}
	return []domain.PostLike{}, nil
}

func (m *MockEngagementService) LikeComment(ctx context.Context, authorID, commentID uint) error {
	if m.LikeCommentFunc != nil {
		return m.LikeCommentFunc(ctx, authorID, commentID)
	}
	return nil
}

func (m *MockEngagementService) UnlikeComment(ctx context.Context, authorID, commentID uint) error {
	if m.UnlikeCommentFunc != nil {
		return m.UnlikeCommentFunc(ctx, authorID, commentID)
	}
	return nil
}

func (m *MockEngagementService) CommentLikes(ctx context.Context, commentID uint) ([]domain.CommentLike, error) {
	if m.CommentLikesFunc != nil {
		return m.CommentLikesFunc(ctx, commentID)
	}
	return []domain.CommentLike{}, nil
}

// Compile-time interface compliance verification
var _ domain.EngagementService = (*MockEngagementService)(nil)
