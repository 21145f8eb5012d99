package stepblob

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "viz-1", []byte(`[{"action":"INIT"}]`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, err := store.Get(ctx, "viz-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `[{"action":"INIT"}]` {
		t.Fatalf("unexpected payload: %s", got)
	}

	if err := store.Delete(ctx, "viz-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "viz-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreCopiesContent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payload := []byte("original")
	if err := store.Put(ctx, "viz-1", payload); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	payload[0] = 'X'

	got, err := store.Get(ctx, "viz-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("stored payload mutated: %s", got)
	}
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestCachedStoreHitsAfterMiss(t *testing.T) {
	origin := NewMemoryStore()
	cached := NewCachedStore(origin, DefaultCacheConfig())
	ctx := context.Background()

	if err := cached.Put(ctx, "viz-1", []byte("steps")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := cached.Get(ctx, "viz-1")
		if err != nil {
			t.Fatalf("get %d failed: %v", i, err)
		}
		if string(got) != "steps" {
			t.Fatalf("get %d: unexpected payload %s", i, got)
		}
	}

	m := cached.Metrics()
	if m.OriginWrites != 1 {
		t.Fatalf("expected 1 origin write, got %d", m.OriginWrites)
	}
	// Put primes the cache, so every read is a hit.
	if m.Hits != 3 || m.Misses != 0 {
		t.Fatalf("expected 3 hits / 0 misses, got %d / %d", m.Hits, m.Misses)
	}
}

func TestCachedStoreDeleteInvalidates(t *testing.T) {
	origin := NewMemoryStore()
	cached := NewCachedStore(origin, DefaultCacheConfig())
	ctx := context.Background()

	if err := cached.Put(ctx, "viz-1", []byte("steps")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := cached.Delete(ctx, "viz-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cached.Get(ctx, "viz-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
