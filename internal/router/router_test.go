package router

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/config"
	"github.com/rastechno/internal/db"
	"github.com/rastechno/internal/handler"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouterWithAPI(t *testing.T) (*gin.Engine, *handler.API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}, &db.Project{}, &db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.AppConfig{
		SessionSecret: "test-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
	}
	api := handler.NewAPI(gdb, nil, nil)
	return SetupRouter(cfg, api), api
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := setupTestRouterWithAPI(t)
	return r
}

func TestPingRoute(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAdminAPIRequiresAuthentication(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/projects", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestPublicRoutesAreOpen(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestLoginGrantsAdminAccess(t *testing.T) {
	r, api := setupTestRouterWithAPI(t)

	if err := api.Users().EnsureAdmin("admin", "secret-pass"); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	body := bytes.NewBufferString(`{"username":"admin","password":"secret-pass"}`)
	loginReq := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	loginReq.Header.Set("Content-Type", "application/json")
	loginRes := httptest.NewRecorder()
	r.ServeHTTP(loginRes, loginReq)

	if loginRes.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", loginRes.Code, loginRes.Body.String())
	}
	cookies := loginRes.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after login")
	}

	adminReq := httptest.NewRequest(http.MethodGet, "/admin/api/projects", nil)
	for _, cookie := range cookies {
		adminReq.AddCookie(cookie)
	}
	adminRes := httptest.NewRecorder()
	r.ServeHTTP(adminRes, adminReq)

	if adminRes.Code != http.StatusOK {
		t.Fatalf("expected authenticated access, got %d: %s", adminRes.Code, adminRes.Body.String())
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
