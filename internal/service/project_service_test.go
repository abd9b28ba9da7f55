package service

import (
	"fmt"
	"testing"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, models ...interface{}) (*gorm.DB, func()) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func setupProjectService(t *testing.T, c *cache.Cache) (*ProjectService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.Project{})
	return NewProjectService(gdb, c), cleanup
}

func seedProjects(t *testing.T, svc *ProjectService, titles ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(titles))
	for _, title := range titles {
		item, err := svc.Create(ProjectInput{Title: title, Category: "web"})
		if err != nil {
			t.Fatalf("failed to seed project %s: %v", title, err)
		}
		ids = append(ids, item.ID)
	}
	return ids
}

func TestCreateProjectAppendsToEnd(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	seedProjects(t, svc, "first", "second", "third")

	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(items))
	}
	for i, item := range items {
		if item.DisplayOrder != i {
			t.Fatalf("expected display order %d, got %d for %s", i, item.DisplayOrder, item.Title)
		}
	}
}

func TestCreateProjectRejectsMissingFields(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	if _, err := svc.Create(ProjectInput{Category: "web"}); err == nil {
		t.Fatal("expected error for missing title")
	}
	if _, err := svc.Create(ProjectInput{Title: "  "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestReorderProjectsAppliesGivenOrder(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	ids := seedProjects(t, svc, "a", "b", "c")

	reversed := []uint{ids[2], ids[0], ids[1]}
	if err := svc.Reorder(reversed); err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}

	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	for i, item := range items {
		if item.ID != reversed[i] {
			t.Fatalf("expected project %d at position %d, got %d", reversed[i], i, item.ID)
		}
	}
}

func TestReorderProjectsIsIdempotent(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	ids := seedProjects(t, svc, "a", "b", "c")
	order := []uint{ids[1], ids[2], ids[0]}

	if err := svc.Reorder(order); err != nil {
		t.Fatalf("first Reorder returned error: %v", err)
	}
	if err := svc.Reorder(order); err != nil {
		t.Fatalf("second Reorder returned error: %v", err)
	}

	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	for i, item := range items {
		if item.ID != order[i] {
			t.Fatalf("expected project %d at position %d, got %d", order[i], i, item.ID)
		}
	}
}

func TestListPublishedHidesUnpublished(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	if _, err := svc.Create(ProjectInput{Title: "visible", Category: "web"}); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if _, err := svc.Create(ProjectInput{Title: "hidden", Category: "web", IsPublished: boolPtr(false)}); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	items, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "visible" {
		t.Fatalf("expected only published project, got %+v", items)
	}
}

func TestSetPublishedPreservesDisplayOrder(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	item, err := svc.Create(ProjectInput{Title: "toggle me", Category: "web", DisplayOrder: intPtr(7)})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	toggled, err := svc.SetPublished(item.ID, false)
	if err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}
	if toggled.IsPublished {
		t.Fatal("expected project to be unpublished")
	}
	if toggled.DisplayOrder != 7 {
		t.Fatalf("expected display order preserved, got %d", toggled.DisplayOrder)
	}

	back, err := svc.SetPublished(item.ID, true)
	if err != nil {
		t.Fatalf("SetPublished returned error: %v", err)
	}
	if !back.IsPublished || back.DisplayOrder != 7 {
		t.Fatalf("expected round-trip to restore state, got %+v", back)
	}
}

func TestDeleteProjectIsIdempotent(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	ids := seedProjects(t, svc, "gone")
	if err := svc.Delete(ids[0]); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(ids[0]); err != nil {
		t.Fatalf("expected repeated delete to succeed, got %v", err)
	}
	if err := svc.Delete(9999); err != nil {
		t.Fatalf("expected delete of missing id to succeed, got %v", err)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	svc, cleanup := setupProjectService(t, nil)
	defer cleanup()

	if _, err := svc.Get(42); err != ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectMutationsInvalidateCache(t *testing.T) {
	c := cache.New(cache.NewMemoryStore(), 0)
	svc, cleanup := setupProjectService(t, c)
	defer cleanup()

	seedProjects(t, svc, "cached")

	// 第一次读取填充缓存
	items, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 project, got %d", len(items))
	}

	// 写操作后缓存必须失效，新数据立即可见
	if _, err := svc.Create(ProjectInput{Title: "fresh", Category: "web"}); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	items, err = svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected cache invalidation to surface new project, got %d items", len(items))
	}
}
