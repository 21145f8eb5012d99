package project

import (
	"context"
	"errors"
	"testing"

	"algolens/internal/gateway/entity"
)

func TestMemoryStoreCRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	p, err := store.Create(ctx, entity.Project{ID: "p1", UserID: "u1", Name: "first"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.Create(ctx, entity.Project{ID: "p2", UserID: "u2", Name: "second"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "first" {
		t.Fatalf("unexpected name %q", got.Name)
	}

	p.Name = "renamed"
	if _, err := store.Update(ctx, p); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = store.Get(ctx, "p1")
	if got.Name != "renamed" {
		t.Fatalf("update not applied, name %q", got.Name)
	}

	byUser, err := store.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != "p1" {
		t.Fatalf("unexpected user listing: %+v", byUser)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(all))
	}

	if err := store.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestMemoryStoreRejectsBlankID(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Create(context.Background(), entity.Project{ID: "  "}); err == nil {
		t.Fatal("expected error for blank id")
	}
}
