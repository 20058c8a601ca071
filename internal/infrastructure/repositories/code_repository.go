package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/azimochilov/instagram-clone/domain"
)

// CodeRepositoryImpl implements domain.CodeRepository using GORM
type CodeRepositoryImpl struct {
	db *gorm.DB
}

// DBVerificationCode represents the database model for VerificationCode.
// A partial unique index on (user_id) WHERE confirmed = false guarantees at
// most one outstanding code per user, see database.AutoMigrate.
type DBVerificationCode struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"index;not null"`
	User      DBUser          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Channel   domain.AuthType `gorm:"size:16"`
	Code      string          `gorm:"size:16;index"`
	Confirmed bool            `gorm:"not null;default:false"`
	ExpiresAt time.Time       `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBVerificationCode) TableName() string {
	return "verification_codes"
}

// NewCodeRepository creates a new verification code repository
func NewCodeRepository(db *gorm.DB) domain.CodeRepository {
	return &CodeRepositoryImpl{db: db}
}

// Replace implements domain.CodeRepository. Removing stale unconfirmed rows
// and inserting the new one happens in one transaction so the partial unique
// index can never trip on a dead code.
func (r *CodeRepositoryImpl) Replace(ctx context.Context, code *domain.VerificationCode) error {
	dbCode := &DBVerificationCode{
		UserID:    code.UserID,
		Channel:   code.Channel,
		Code:      code.Code,
		Confirmed: code.Confirmed,
		ExpiresAt: code.ExpiresAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND confirmed = ?", code.UserID, false).
			Delete(&DBVerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Create(dbCode).Error
	})
	if err != nil {
		return err
	}

	code.ID = dbCode.ID
	code.CreatedAt = dbCode.CreatedAt
	return nil
}

// Confirm implements domain.CodeRepository. Expiration is a strict
// comparison: a code whose expiry equals now is already expired. The
// guarded update makes confirmation a one-way transition even under
// concurrent checks.
func (r *CodeRepositoryImpl) Confirm(ctx context.Context, userID uint, code string, now time.Time) (*domain.VerificationCode, error) {
	var dbCode DBVerificationCode
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND confirmed = ? AND expires_at > ?", userID, code, false, now).
		First(&dbCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCodeInvalid
		}
		return nil, err
	}

	res := r.db.WithContext(ctx).Model(&DBVerificationCode{}).
		Where("id = ? AND confirmed = ?", dbCode.ID, false).
		Update("confirmed", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCodeInvalid
	}

	return &domain.VerificationCode{
		ID:        dbCode.ID,
		UserID:    dbCode.UserID,
		Channel:   dbCode.Channel,
		Code:      dbCode.Code,
		Confirmed: true,
		ExpiresAt: dbCode.ExpiresAt,
		CreatedAt: dbCode.CreatedAt,
	}, nil
}

// HasOutstanding implements domain.CodeRepository
func (r *CodeRepositoryImpl) HasOutstanding(ctx context.Context, userID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBVerificationCode{}).
		Where("user_id = ? AND confirmed = ? AND expires_at > ?", userID, false, now).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
