package cache

import (
	"context"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute)
	ctx := context.Background()

	type row struct {
		ID    uint
		Title string
	}

	c.SetJSON(ctx, "projects", "all", []row{{ID: 1, Title: "Alpha"}})

	var got []row
	if !c.GetJSON(ctx, "projects", "all", &got) {
		t.Fatalf("expected cache hit")
	}
	if len(got) != 1 || got[0].Title != "Alpha" {
		t.Fatalf("unexpected cached value: %#v", got)
	}
}

func TestCacheInvalidateDropsAllVariants(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute)
	ctx := context.Background()

	c.SetJSON(ctx, "projects", "all", []int{1})
	c.SetJSON(ctx, "projects", "published", []int{1})
	c.SetJSON(ctx, "clients", "all", []int{2})

	c.Invalidate(ctx, "projects")

	var got []int
	if c.GetJSON(ctx, "projects", "all", &got) {
		t.Fatalf("expected projects/all to be invalidated")
	}
	if c.GetJSON(ctx, "projects", "published", &got) {
		t.Fatalf("expected projects/published to be invalidated")
	}
	if !c.GetJSON(ctx, "clients", "all", &got) {
		t.Fatalf("expected clients cache to survive projects invalidation")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	c.SetJSON(ctx, "projects", "all", []int{1})
	c.Invalidate(ctx, "projects")

	var got []int
	if c.GetJSON(ctx, "projects", "all", &got) {
		t.Fatalf("nil cache must never report a hit")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "cache:projects:all", []byte("[]"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(ctx, "cache:projects:all"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}
