package services

import (
	"context"
	"fmt"

	"github.com/azimochilov/instagram-clone/domain"
)

const (
	maxCaptionLength = 1000
	defaultPageSize  = 10
	maxPageSize      = 50
)

// PostServiceImpl implements domain.PostService
type PostServiceImpl struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo domain.PostRepository, commentRepo domain.CommentRepository) domain.PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost implements domain.PostService
func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint, imageURL, caption string) (*domain.Post, error) {
	if len(caption) > maxCaptionLength {
		return nil, domain.ErrCaptionTooLong
	}

	post := &domain.Post{
		AuthorID: authorID,
		ImageURL: imageURL,
		Caption:  caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// ListPosts implements domain.PostService
func (s *PostServiceImpl) ListPosts(ctx context.Context, page, pageSize int) ([]domain.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.postRepo.List(ctx, (page-1)*pageSize, pageSize)
}

// GetPost implements domain.PostService
func (s *PostServiceImpl) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// UpdatePost implements domain.PostService. Only the author may update.
func (s *PostServiceImpl) UpdatePost(ctx context.Context, actorID, postID uint, imageURL, caption string) (*domain.Post, error) {
	if len(caption) > maxCaptionLength {
		return nil, domain.ErrCaptionTooLong
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, domain.ErrNotAuthor
	}

	post.ImageURL = imageURL
	post.Caption = caption
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost implements domain.PostService. The author or a moderator may
// delete; comments and likes go with the post through the FK cascade.
func (s *PostServiceImpl) DeletePost(ctx context.Context, actorID uint, actorRole string, postID uint) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && actorRole != "admin" {
		return domain.ErrNotAuthor
	}
	return s.postRepo.Delete(ctx, postID)
}

// CreateComment implements domain.PostService. A parent comment must exist
// and belong to the same post.
func (s *PostServiceImpl) CreateComment(ctx context.Context, authorID, postID uint, parentID *uint, body string) (*domain.PostComment, error) {
	if len(body) > maxCaptionLength {
		return nil, domain.ErrCaptionTooLong
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, domain.ErrCommentNotFound
		}
	}

	comment := &domain.PostComment{
		PostID:   postID,
		AuthorID: authorID,
		ParentID: parentID,
		Body:     body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListComments implements domain.PostService
func (s *PostServiceImpl) ListComments(ctx context.Context, postID uint) ([]domain.PostComment, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// GetComment implements domain.PostService
func (s *PostServiceImpl) GetComment(ctx context.Context, id uint) (*domain.PostComment, error) {
	return s.commentRepo.FindByID(ctx, id)
}

// DeleteComment implements domain.PostService. The author or a moderator may
// delete; children cascade.
func (s *PostServiceImpl) DeleteComment(ctx context.Context, actorID uint, actorRole string, commentID uint) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID && actorRole != "admin" {
		return domain.ErrNotAuthor
	}
	return s.commentRepo.Delete(ctx, commentID)
}
