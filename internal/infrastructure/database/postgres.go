package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/azimochilov/instagram-clone/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is required so
// unique constraint violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the schema plus the constraints the application relies
// on: at most one unconfirmed verification code per user, one like per
// (author, target), and unique non-empty email/phone/username.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBVerificationCode{},
		&repositories.DBPost{},
		&repositories.DBPostComment{},
		&repositories.DBPostLike{},
		&repositories.DBCommentLike{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Partial unique indexes are not expressible through GORM tags.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_outstanding_code ON verification_codes (user_id) WHERE confirmed = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_email ON users (email) WHERE email <> ''`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_phone ON users (phone) WHERE phone <> ''`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
