package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/azimochilov/instagram-clone/domain"
)

// setupTestDB creates an in-memory SQLite database mirroring the production
// schema, including the partial unique indexes and FK enforcement.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&DBUser{},
		&DBVerificationCode{},
		&DBPost{},
		&DBPostComment{},
		&DBPostLike{},
		&DBCommentLike{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_outstanding_code ON verification_codes (user_id) WHERE confirmed = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_email ON users (email) WHERE email <> ''`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_phone ON users (phone) WHERE phone <> ''`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create index: %v", err)
		}
	}

	return db
}

// seedUser inserts a user row and returns its ID.
func seedUser(t *testing.T, db *gorm.DB, username, email, phone string) uint {
	t.Helper()

	user := &DBUser{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: "hashed_password",
		Role:         "user",
		AuthStatus:   domain.StatusDone,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username:   "user_abc123",
		Email:      "ada@example.com",
		Role:       "user",
		AuthType:   domain.ViaEmail,
		AuthStatus: domain.StatusNew,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID.Email != "ada@example.com" || byID.AuthStatus != domain.StatusNew {
		t.Errorf("unexpected user %+v", byID)
	}

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, byEmail.ID)
	}

	if _, err := repo.FindByUsername(ctx, "user_abc123"); err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_EmptyChannelNeverMatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Phone signups carry an empty email and vice versa. An empty lookup
	// value must not match those rows.
	seedUser(t, db, "phoneuser", "", "+998901234567")
	seedUser(t, db, "emailuser", "e@example.com", "")

	if _, err := repo.FindByEmail(ctx, ""); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound for empty email, got %v", err)
	}
	if _, err := repo.FindByPhone(ctx, ""); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound for empty phone, got %v", err)
	}
}

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "first", "dup@example.com", "")

	err := repo.Create(ctx, &domain.User{
		Username: "second",
		Email:    "dup@example.com",
		Role:     "user",
	})
	if err != domain.ErrUserAlreadyExists {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateUsernameConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "taken", "a@example.com", "")
	id := seedUser(t, db, "mine", "b@example.com", "")

	user, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	user.Username = "taken"
	if err := repo.Update(ctx, user); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdatePassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "ada", "ada@example.com", "")

	if err := repo.UpdatePassword(ctx, id, "hashed_newpass"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	user, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.PasswordHash != "hashed_newpass" {
		t.Errorf("expected new hash, got %q", user.PasswordHash)
	}
}

func TestUserRepositoryImpl_TouchLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "ada", "ada@example.com", "")

	before := time.Now().Add(-time.Second)
	if err := repo.TouchLastLogin(ctx, id); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}

	user, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.LastLoginAt == nil || user.LastLoginAt.Before(before) {
		t.Errorf("expected last login set recently, got %v", user.LastLoginAt)
	}
}
