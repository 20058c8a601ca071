package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/azimochilov/instagram-clone/domain"
)

func TestCommentRepositoryImpl_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	authorID := seedUser(t, db, "ada", "ada@example.com", "")
	postID := seedPost(t, db, authorID, "post", time.Now())

	first := &domain.PostComment{PostID: postID, AuthorID: authorID, Body: "first"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A reply references its parent.
	reply := &domain.PostComment{PostID: postID, AuthorID: authorID, ParentID: &first.ID, Body: "reply"}
	if err := repo.Create(ctx, reply); err != nil {
		t.Fatalf("Create reply: %v", err)
	}

	comments, err := repo.ListByPost(ctx, postID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Body != "first" {
		t.Errorf("expected oldest first, got %q", comments[0].Body)
	}
	if comments[1].ParentID == nil || *comments[1].ParentID != first.ID {
		t.Errorf("expected reply parent %d, got %v", first.ID, comments[1].ParentID)
	}
}

func TestCommentRepositoryImpl_DeleteCascadesToChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	authorID := seedUser(t, db, "ada", "ada@example.com", "")
	postID := seedPost(t, db, authorID, "post", time.Now())

	parent := &domain.PostComment{PostID: postID, AuthorID: authorID, Body: "parent"}
	if err := repo.Create(ctx, parent); err != nil {
		t.Fatalf("Create: %v", err)
	}
	child := &domain.PostComment{PostID: postID, AuthorID: authorID, ParentID: &parent.ID, Body: "child"}
	if err := repo.Create(ctx, child); err != nil {
		t.Fatalf("Create child: %v", err)
	}

	if err := repo.Delete(ctx, parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, child.ID); err != domain.ErrCommentNotFound {
		t.Errorf("expected child gone with parent, got %v", err)
	}

	if err := repo.Delete(ctx, parent.ID); err != domain.ErrCommentNotFound {
		t.Errorf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}
