package services

import (
	"context"

	"github.com/azimochilov/instagram-clone/domain"
)

// EngagementServiceImpl implements domain.EngagementService. Conflicts come
// out as explicit errors rather than exceptions: the store's unique
// constraint reports the duplicate, the repository translates it, and the
// transport layer maps each variant to a status code.
type EngagementServiceImpl struct {
	likeRepo    domain.LikeRepository
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
}

// NewEngagementService creates a new engagement service
func NewEngagementService(likeRepo domain.LikeRepository, postRepo domain.PostRepository, commentRepo domain.CommentRepository) domain.EngagementService {
	return &EngagementServiceImpl{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// LikePost implements domain.EngagementService
func (s *EngagementServiceImpl) LikePost(ctx context.Context, authorID, postID uint) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.CreatePostLike(ctx, &domain.PostLike{PostID: postID, AuthorID: authorID})
}

// UnlikePost implements domain.EngagementService
func (s *EngagementServiceImpl) UnlikePost(ctx context.Context, authorID, postID uint) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.DeletePostLike(ctx, postID, authorID)
}

// PostLikes implements domain.EngagementService
func (s *EngagementServiceImpl) PostLikes(ctx context.Context, postID uint) ([]domain.PostLike, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListPostLikes(ctx, postID)
}

// LikeComment implements domain.EngagementService
func (s *EngagementServiceImpl) LikeComment(ctx context.Context, authorID, commentID uint) error {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return err
	}
	return s.likeRepo.CreateCommentLike(ctx, &domain.CommentLike{CommentID: commentID, AuthorID: authorID})
}

// UnlikeComment implements domain.EngagementService
func (s *EngagementServiceImpl) UnlikeComment(ctx context.Context, authorID, commentID uint) error {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return err
	}
	return s.likeRepo.DeleteCommentLike(ctx, commentID, authorID)
}

// CommentLikes implements domain.EngagementService
func (s *EngagementServiceImpl) CommentLikes(ctx context.Context, commentID uint) ([]domain.CommentLike, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListCommentLikes(ctx, commentID)
}
