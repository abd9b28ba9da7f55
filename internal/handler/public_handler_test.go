package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

func performJSON(t *testing.T, handlerFunc gin.HandlerFunc, method, path string, payload any, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	handlerFunc(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return result
}

func TestGetHomeOmitsHiddenSections(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	if _, err := api.projects.Create(service.ProjectInput{Title: "p", Category: "web"}); err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	if _, err := api.services.Create(service.ServiceItemInput{Title: "s", Description: "d"}); err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	if err := api.settings.SaveSectionVisibility(map[string]bool{"portfolio": false}); err != nil {
		t.Fatalf("failed to hide portfolio: %v", err)
	}

	w := performJSON(t, api.GetHome, http.MethodGet, "/api/home", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	result := decodeBody(t, w)
	sections, ok := result["sections"].(map[string]any)
	if !ok {
		t.Fatalf("expected sections object, got %v", result["sections"])
	}
	if _, exists := sections["portfolio"]; exists {
		t.Fatal("expected hidden portfolio section to be omitted")
	}
	if _, exists := sections["services"]; !exists {
		t.Fatal("expected visible services section to be present")
	}
}

func TestPublicProjectsReturns404WhenSectionHidden(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	if err := api.settings.SaveSectionVisibility(map[string]bool{"portfolio": false}); err != nil {
		t.Fatalf("failed to hide portfolio: %v", err)
	}

	w := performJSON(t, api.PublicProjects, http.MethodGet, "/api/projects", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestPublicBlogBySlugRendersMarkdown(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	published := true
	blog, err := api.blogs.Create(service.BlogInput{
		Title:       "Hello World",
		Content:     "# 标题\n\n**加粗**",
		IsPublished: &published,
	})
	if err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	w := performJSON(t, api.PublicBlogBySlug, http.MethodGet, "/api/blogs/"+blog.Slug, nil,
		gin.Params{gin.Param{Key: "slug", Value: blog.Slug}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<strong>") {
		t.Fatalf("expected rendered HTML in response, got %s", body)
	}
}

func TestPublicBlogBySlugHidesDrafts(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	blog, err := api.blogs.Create(service.BlogInput{Title: "Draft", Content: "内容"})
	if err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	w := performJSON(t, api.PublicBlogBySlug, http.MethodGet, "/api/blogs/"+blog.Slug, nil,
		gin.Params{gin.Param{Key: "slug", Value: blog.Slug}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for draft, got %d", w.Code)
	}
}

func TestSubmitContactValidatesPayload(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := performJSON(t, api.SubmitContact, http.MethodPost, "/api/contact",
		map[string]any{"name": "张三"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	w = performJSON(t, api.SubmitContact, http.MethodPost, "/api/contact", map[string]any{
		"name":    "张三",
		"email":   "zhang@example.com",
		"message": "想了解贵司的咨询服务",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	messages, err := api.contacts.List()
	if err != nil {
		t.Fatalf("failed to list messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(messages))
	}
}

func TestSubmitApplicationForUnknownJob(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := performJSON(t, api.SubmitApplication, http.MethodPost, "/api/careers/42/apply", map[string]any{
		"name":  "李四",
		"email": "li@example.com",
	}, gin.Params{gin.Param{Key: "id", Value: "42"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
