package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/azimochilov/instagram-clone/domain"
)

func TestCodeRepositoryImpl_ReplaceInvalidatesOldCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCodeRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "ada", "ada@example.com", "")

	first := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "111111",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}
	if err := repo.Replace(ctx, first); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	second := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "222222",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}
	if err := repo.Replace(ctx, second); err != nil {
		t.Fatalf("Replace second: %v", err)
	}

	if _, err := repo.Confirm(ctx, userID, "111111", time.Now()); err != domain.ErrCodeInvalid {
		t.Errorf("expected replaced code rejected, got %v", err)
	}
	if _, err := repo.Confirm(ctx, userID, "222222", time.Now()); err != nil {
		t.Errorf("expected fresh code accepted, got %v", err)
	}
}

func TestCodeRepositoryImpl_ConfirmOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCodeRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "ada", "ada@example.com", "")

	code := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "123456",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}
	if err := repo.Replace(ctx, code); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	confirmed, err := repo.Confirm(ctx, userID, "123456", time.Now())
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !confirmed.Confirmed {
		t.Error("expected confirmed code")
	}

	if _, err := repo.Confirm(ctx, userID, "123456", time.Now()); err != domain.ErrCodeInvalid {
		t.Errorf("expected second confirm rejected, got %v", err)
	}
}

func TestCodeRepositoryImpl_ConfirmExpiry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCodeRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "ada", "ada@example.com", "")

	expiry := time.Now().Add(3 * time.Minute)
	code := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "123456",
		ExpiresAt: expiry,
	}
	if err := repo.Replace(ctx, code); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	// Expiry boundary is exclusive: at exactly expires_at the code is dead.
	if _, err := repo.Confirm(ctx, userID, "123456", expiry); err != domain.ErrCodeInvalid {
		t.Errorf("expected code expired at the boundary, got %v", err)
	}
	if _, err := repo.Confirm(ctx, userID, "123456", expiry.Add(time.Second)); err != domain.ErrCodeInvalid {
		t.Errorf("expected code expired after the boundary, got %v", err)
	}
	if _, err := repo.Confirm(ctx, userID, "123456", expiry.Add(-time.Second)); err != nil {
		t.Errorf("expected code valid before the boundary, got %v", err)
	}
}

func TestCodeRepositoryImpl_WrongCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCodeRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "ada", "ada@example.com", "")

	code := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "123456",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}
	if err := repo.Replace(ctx, code); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if _, err := repo.Confirm(ctx, userID, "654321", time.Now()); err != domain.ErrCodeInvalid {
		t.Errorf("expected wrong code rejected, got %v", err)
	}
	// A failed attempt must not consume the code.
	if _, err := repo.Confirm(ctx, userID, "123456", time.Now()); err != nil {
		t.Errorf("expected correct code still valid, got %v", err)
	}
}

func TestCodeRepositoryImpl_HasOutstanding(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCodeRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "ada", "ada@example.com", "")

	outstanding, err := repo.HasOutstanding(ctx, userID, time.Now())
	if err != nil {
		t.Fatalf("HasOutstanding: %v", err)
	}
	if outstanding {
		t.Error("expected no outstanding code initially")
	}

	code := &domain.VerificationCode{
		UserID:    userID,
		Channel:   domain.ViaEmail,
		Code:      "123456",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}
	if err := repo.Replace(ctx, code); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	outstanding, err = repo.HasOutstanding(ctx, userID, time.Now())
	if err != nil {
		t.Fatalf("HasOutstanding: %v", err)
	}
	if !outstanding {
		t.Error("expected outstanding code after issue")
	}

	// An expired code no longer counts as outstanding.
	outstanding, err = repo.HasOutstanding(ctx, userID, time.Now().Add(5*time.Minute))
	if err != nil {
		t.Fatalf("HasOutstanding: %v", err)
	}
	if outstanding {
		t.Error("expected expired code not to count")
	}

	if _, err := repo.Confirm(ctx, userID, "123456", time.Now()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	outstanding, err = repo.HasOutstanding(ctx, userID, time.Now())
	if err != nil {
		t.Fatalf("HasOutstanding: %v", err)
	}
	if outstanding {
		t.Error("expected confirmed code not to count")
	}
}
