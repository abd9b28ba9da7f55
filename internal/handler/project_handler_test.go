package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

func TestCreateProjectRejectsMissingCategory(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := performJSON(t, api.CreateProject, http.MethodPost, "/admin/api/projects",
		map[string]any{"title": "只有标题"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCreateAndReorderProjects(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	var ids []uint
	for _, title := range []string{"甲", "乙", "丙"} {
		w := performJSON(t, api.CreateProject, http.MethodPost, "/admin/api/projects",
			map[string]any{"title": title, "category": "web"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	}

	items, err := api.projects.ListAll()
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	reversed := []uint{ids[2], ids[1], ids[0]}
	w := performJSON(t, api.ReorderProjects, http.MethodPut, "/admin/api/projects/reorder",
		map[string]any{"ids": reversed}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	items, err = api.projects.ListAll()
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	for i, item := range items {
		if item.ID != reversed[i] {
			t.Fatalf("expected project %d at position %d, got %d", reversed[i], i, item.ID)
		}
	}
}

func TestToggleProjectPublishedRequiresValue(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	item, err := api.projects.Create(service.ProjectInput{Title: "p", Category: "web"})
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	idParam := gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(item.ID))}}

	// 缺失字段时应拒绝，避免误把零值当作显式 false
	w := performJSON(t, api.ToggleProjectPublished, http.MethodPatch,
		"/admin/api/projects/1/publish", map[string]any{}, idParam)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	w = performJSON(t, api.ToggleProjectPublished, http.MethodPatch,
		"/admin/api/projects/1/publish", map[string]any{"is_published": false}, idParam)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	refreshed, err := api.projects.Get(item.ID)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if refreshed.IsPublished {
		t.Fatal("expected project to be unpublished")
	}
}

func TestDeleteProjectWithBadID(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := performJSON(t, api.DeleteProject, http.MethodDelete, "/admin/api/projects/abc", nil,
		gin.Params{gin.Param{Key: "id", Value: "abc"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
