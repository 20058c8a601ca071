package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/azimochilov/instagram-clone/domain"
)

// LikeRepositoryImpl implements domain.LikeRepository using GORM. The
// composite unique indexes are the race-safe enforcement of "one like per
// author and target"; duplicate inserts surface as gorm.ErrDuplicatedKey.
type LikeRepositoryImpl struct {
	db *gorm.DB
}

// DBPostLike represents the database model for PostLike
type DBPostLike struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;uniqueIndex:uniq_post_like"`
	Post      DBPost `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  uint   `gorm:"not null;uniqueIndex:uniq_post_like"`
	Author    DBUser `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPostLike) TableName() string {
	return "post_likes"
}

// DBCommentLike represents the database model for CommentLike
type DBCommentLike struct {
	ID        uint          `gorm:"primaryKey"`
	CommentID uint          `gorm:"not null;uniqueIndex:uniq_comment_like"`
	Comment   DBPostComment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	AuthorID  uint          `gorm:"not null;uniqueIndex:uniq_comment_like"`
	Author    DBUser        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCommentLike) TableName() string {
	return "comment_likes"
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) domain.LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

// CreatePostLike implements domain.LikeRepository
func (r *LikeRepositoryImpl) CreatePostLike(ctx context.Context, like *domain.PostLike) error {
	dbLike := &DBPostLike{
		PostID:   like.PostID,
		AuthorID: like.AuthorID,
	}
	if err := r.db.WithContext(ctx).Create(dbLike).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	like.ID = dbLike.ID
	like.CreatedAt = dbLike.CreatedAt
	return nil
}

// DeletePostLike implements domain.LikeRepository
func (r *LikeRepositoryImpl) DeletePostLike(ctx context.Context, postID, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND author_id = ?", postID, authorID).
		Delete(&DBPostLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotLiked
	}
	return nil
}

// ListPostLikes implements domain.LikeRepository
func (r *LikeRepositoryImpl) ListPostLikes(ctx context.Context, postID uint) ([]domain.PostLike, error) {
	var dbLikes []DBPostLike
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&dbLikes).Error
	if err != nil {
		return nil, err
	}

	likes := make([]domain.PostLike, 0, len(dbLikes))
	for _, l := range dbLikes {
		likes = append(likes, domain.PostLike{
			ID:        l.ID,
			PostID:    l.PostID,
			AuthorID:  l.AuthorID,
			CreatedAt: l.CreatedAt,
		})
	}
	return likes, nil
}

// CreateCommentLike implements domain.LikeRepository
func (r *LikeRepositoryImpl) CreateCommentLike(ctx context.Context, like *domain.CommentLike) error {
	dbLike := &DBCommentLike{
		CommentID: like.CommentID,
		AuthorID:  like.AuthorID,
	}
	if err := r.db.WithContext(ctx).Create(dbLike).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	like.ID = dbLike.ID
	like.CreatedAt = dbLike.CreatedAt
	return nil
}

// DeleteCommentLike implements domain.LikeRepository
func (r *LikeRepositoryImpl) DeleteCommentLike(ctx context.Context, commentID, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND author_id = ?", commentID, authorID).
		Delete(&DBCommentLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotLiked
	}
	return nil
}

// ListCommentLikes implements domain.LikeRepository
func (r *LikeRepositoryImpl) ListCommentLikes(ctx context.Context, commentID uint) ([]domain.CommentLike, error) {
	var dbLikes []DBCommentLike
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at DESC").
		Find(&dbLikes).Error
	if err != nil {
		return nil, err
	}

	likes := make([]domain.CommentLike, 0, len(dbLikes))
	for _, l := range dbLikes {
		likes = append(likes, domain.CommentLike{
			ID:        l.ID,
			CommentID: l.CommentID,
			AuthorID:  l.AuthorID,
			CreatedAt: l.CreatedAt,
		})
	}
	return likes, nil
}
