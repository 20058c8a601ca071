package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/azimochilov/instagram-clone/domain"
)

// CommentRepositoryImpl implements domain.CommentRepository using GORM
type CommentRepositoryImpl struct {
	db *gorm.DB
}

// DBPostComment represents the database model for PostComment. Deleting a
// post removes its comments; deleting a parent removes its children.
type DBPostComment struct {
	ID        uint           `gorm:"primaryKey"`
	PostID    uint           `gorm:"index;not null"`
	Post      DBPost         `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  uint           `gorm:"index;not null"`
	Author    DBUser         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	ParentID  *uint          `gorm:"index"`
	Parent    *DBPostComment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Body      string         `gorm:"size:1000;not null"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPostComment) TableName() string {
	return "post_comments"
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) domain.CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

// Create implements domain.CommentRepository
func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *domain.PostComment) error {
	dbComment := &DBPostComment{
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
		ParentID: comment.ParentID,
		Body:     comment.Body,
	}
	if err := r.db.WithContext(ctx).Create(dbComment).Error; err != nil {
		return err
	}
	comment.ID = dbComment.ID
	comment.CreatedAt = dbComment.CreatedAt
	comment.UpdatedAt = dbComment.UpdatedAt
	return nil
}

// FindByID implements domain.CommentRepository
func (r *CommentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.PostComment, error) {
	var dbComment DBPostComment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbComment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbComment), nil
}

// ListByPost implements domain.CommentRepository, oldest first
func (r *CommentRepositoryImpl) ListByPost(ctx context.Context, postID uint) ([]domain.PostComment, error) {
	var dbComments []DBPostComment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&dbComments).Error
	if err != nil {
		return nil, err
	}

	comments := make([]domain.PostComment, 0, len(dbComments))
	for i := range dbComments {
		comments = append(comments, *r.dbToDomain(&dbComments[i]))
	}
	return comments, nil
}

// Delete implements domain.CommentRepository. Child comments and likes go
// with the comment through the FK cascade.
func (r *CommentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBPostComment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepositoryImpl) dbToDomain(dbComment *DBPostComment) *domain.PostComment {
	return &domain.PostComment{
		ID:        dbComment.ID,
		PostID:    dbComment.PostID,
		AuthorID:  dbComment.AuthorID,
		ParentID:  dbComment.ParentID,
		Body:      dbComment.Body,
		CreatedAt: dbComment.CreatedAt,
		UpdatedAt: dbComment.UpdatedAt,
	}
}
