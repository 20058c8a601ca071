package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/azimochilov/instagram-clone/domain"
)

// PostRepositoryImpl implements domain.PostRepository using GORM
type PostRepositoryImpl struct {
	db *gorm.DB
}

// DBPost represents the database model for Post. The FK contract cascades a
// post delete to its comments and likes.
type DBPost struct {
	ID        uint   `gorm:"primaryKey"`
	AuthorID  uint   `gorm:"index;not null"`
	Author    DBUser `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	ImageURL  string `gorm:"size:512;not null"`
	Caption   string `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPost) TableName() string {
	return "posts"
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &PostRepositoryImpl{db: db}
}

// Create implements domain.PostRepository
func (r *PostRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	dbPost := &DBPost{
		AuthorID: post.AuthorID,
		ImageURL: post.ImageURL,
		Caption:  post.Caption,
	}
	if err := r.db.WithContext(ctx).Create(dbPost).Error; err != nil {
		return err
	}
	post.ID = dbPost.ID
	post.CreatedAt = dbPost.CreatedAt
	post.UpdatedAt = dbPost.UpdatedAt
	return nil
}

// FindByID implements domain.PostRepository
func (r *PostRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var dbPost DBPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPost).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPost), nil
}

// List implements domain.PostRepository, newest first
func (r *PostRepositoryImpl) List(ctx context.Context, offset, limit int) ([]domain.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbPosts []DBPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&dbPosts).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]domain.Post, 0, len(dbPosts))
	for i := range dbPosts {
		posts = append(posts, *r.dbToDomain(&dbPosts[i]))
	}
	return posts, total, nil
}

// Update implements domain.PostRepository
func (r *PostRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Model(&DBPost{}).Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"image_url": post.ImageURL,
			"caption":   post.Caption,
		}).Error
}

// Delete implements domain.PostRepository. Comments and likes go with the
// post through the FK cascade.
func (r *PostRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) dbToDomain(dbPost *DBPost) *domain.Post {
	return &domain.Post{
		ID:        dbPost.ID,
		AuthorID:  dbPost.AuthorID,
		ImageURL:  dbPost.ImageURL,
		Caption:   dbPost.Caption,
		CreatedAt: dbPost.CreatedAt,
		UpdatedAt: dbPost.UpdatedAt,
	}
}
