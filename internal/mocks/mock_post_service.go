package mocks

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// MockPostService implements domain.PostService interface for testing
type MockPostService struct {
	CreatePostFunc    func(ctx context.Context, authorID uint, imageURL, caption string) (*domain.Post, error)
	ListPostsFunc     func(ctx context.Context, page, pageSize int) ([]domain.Post, int64, error)
	GetPostFunc       func(ctx context.Context, id uint) (*domain.Post, error)
	UpdatePostFunc    func(ctx context.Context, actorID, postID uint, imageURL, caption string) (*domain.Post, error)
	DeletePostFunc    func(ctx context.Context, actorID uint, actorRole string, postID uint) error
	CreateCommentFunc func(ctx context.Context, authorID, postID uint, parentID *uint, body string) (*domain.PostComment, error)
	ListCommentsFunc  func(ctx context.Context, postID uint) ([]domain.PostComment, error)
	GetCommentFunc    func(ctx context.Context, id uint) (*domain.PostComment, error)
	DeleteCommentFunc func(ctx context.Context, actorID uint, actorRole string, commentID uint) error
}

// NewMockPostService creates a new MockPostService with default behaviors
func NewMockPostService() *MockPostService {
	return &MockPostService{}
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID uint, imageURL, caption string) (*domain.Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, authorID, imageURL, caption)
	}
	return &domain.Post{ID: 1, AuthorID: authorID, ImageURL: imageURL, Caption: caption}, nil
}

func (m *MockPostService) ListPosts(ctx context.Context, page, pageSize int) ([]domain.Post, int64, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, page, pageSize)
	}
	return []domain.Post{}, 0, nil
}

func (m *MockPostService) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPostService) UpdatePost(ctx context.Context, actorID, postID uint, imageURL, caption string) (*domain.Post, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, actorID, postID, imageURL, caption)
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPostService) DeletePost(ctx context.Context, actorID uint, actorRole string, postID uint) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, actorID, actorRole, postID)
	}
	return nil
}

func (m *MockPostService) CreateComment(ctx context.Context, authorID, postID uint, parentID *uint, body string) (*domain.PostComment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, authorID, postID, parentID, body)
	}
	return &domain.PostComment{ID: 1, PostID: postID, AuthorID: authorID, ParentID: parentID, Body: body}, nil
}

func (m *MockPostService) ListComments(ctx context.Context, postID uint) ([]domain.PostComment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, postID)
	}
	return []domain.PostComment{}, nil
}

func (m *MockPostService) GetComment(ctx context.Context, id uint) (*domain.PostComment, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func (m *MockPostService) DeleteComment(ctx context.Context, actorID uint, actorRole string, commentID uint) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, actorID, actorRole, commentID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PostService = (*MockPostService)(nil)
