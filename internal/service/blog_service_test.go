package service

import (
	"errors"
	"testing"

	"github.com/rastechno/internal/db"
)

func setupBlogService(t *testing.T) (*BlogService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.Blog{})
	return NewBlogService(gdb, nil), cleanup
}

func TestCreateBlogGeneratesSlugFromTitle(t *testing.T) {
	svc, cleanup := setupBlogService(t)
	defer cleanup()

	item, err := svc.Create(BlogInput{Title: "Cloud Migration 101!", Content: "正文"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.Slug != "cloud-migration-101" {
		t.Fatalf("expected generated slug, got %s", item.Slug)
	}
	if item.IsPublished {
		t.Fatal("expected new blog to be a draft")
	}
	if item.PublishedAt != nil {
		t.Fatal("expected draft to have no publish timestamp")
	}
	if item.Author != "RaS Techno" {
		t.Fatalf("expected default author, got %s", item.Author)
	}
}

func TestCreateBlogRejectsDuplicateSlug(t *testing.T) {
	svc, cleanup := setupBlogService(t)
	defer cleanup()

	if _, err := svc.Create(BlogInput{Title: "Same Title", Content: "a"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err := svc.Create(BlogInput{Title: "Same Title", Content: "b"})
	if !errors.Is(err, ErrBlogSlugTaken) {
		t.Fatalf("expected ErrBlogSlugTaken, got %v", err)
	}
}

func TestUpdateBlogKeepsSlugAvailableForSelf(t *testing.T) {
	svc, cleanup := setupBlogService(t)
	defer cleanup()

	item, err := svc.Create(BlogInput{Title: "Original", Content: "a"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 不改 slug 的更新不应触发占用检查
	updated, err := svc.Update(item.ID, BlogInput{Title: "Original", Content: "updated"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Content != "updated" {
		t.Fatalf("expected content updated, got %s", updated.Content)
	}
}

func TestPublishStampsTimestampOnce(t *testing.T) {
	svc, cleanup := setupBlogService(t)
	defer cleanup()

	item, err := svc.Create(BlogInput{Title: "Draft", Content: "a"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	published, err := svc.SetPublished(item.ID, true)
	if err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("expected publish timestamp to be set")
	}
	first := *published.PublishedAt

	// 下架再上架不应重置首次发布时间
	if _, err := svc.SetPublished(item.ID, false); err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}
	again, err := svc.SetPublished(item.ID, true)
	if err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(first) {
		t.Fatalf("expected publish timestamp preserved, got %v", again.PublishedAt)
	}
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	svc, cleanup := setupBlogService(t)
	defer cleanup()

	item, err := svc.Create(BlogInput{Title: "Hidden Draft", Content: "a"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetPublishedBySlug(item.Slug); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected draft to be invisible, got %v", err)
	}

	if _, err := svc.SetPublished(item.ID, true); err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}

	found, err := svc.GetPublishedBySlug(item.Slug)
	if err != nil {
		t.Fatalf("GetPublishedBySlug returned error: %v", err)
	}
	if found.ID != item.ID {
		t.Fatalf("expected blog %d, got %d", item.ID, found.ID)
	}
}
