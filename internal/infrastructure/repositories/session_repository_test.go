package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/azimochilov/instagram-clone/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_1_123",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByID(ctx, "sess_1_123")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.UserID != 1 {
		t.Errorf("expected user 1, got %d", found.UserID)
	}

	if _, err := repo.FindByID(ctx, "sess_ghost"); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepositoryImpl_DeleteRevokes(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_1_123",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, "sess_1_123"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, "sess_1_123"); err != domain.ErrSessionNotFound {
		t.Errorf("expected revoked session gone, got %v", err)
	}
}

func TestSessionRepositoryImpl_ExpiredSession(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_1_123",
		UserID:    1,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess_1_123"); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The stale key is removed on read.
	if _, err := repo.FindByID(ctx, "sess_1_123"); err != domain.ErrSessionNotFound {
		t.Errorf("expected stale key removed, got %v", err)
	}
}
