package service

import (
	"errors"
	"testing"

	"github.com/rastechno/internal/db"
)

func setupSettingService(t *testing.T) (*SiteSettingService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.SiteSetting{})
	return NewSiteSettingService(gdb, nil), cleanup
}

func TestSectionVisibilityDefaultsToVisible(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	visibility, err := svc.SectionVisibility()
	if err != nil {
		t.Fatalf("SectionVisibility returned error: %v", err)
	}

	for _, key := range SectionKeys {
		if !visibility.IsVisible(key) {
			t.Fatalf("expected section %s to default to visible", key)
		}
	}
}

func TestOnlyExplicitFalseHidesSection(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	if err := svc.SaveSectionVisibility(map[string]bool{"blog": false, "hero": true}); err != nil {
		t.Fatalf("SaveSectionVisibility returned error: %v", err)
	}

	visibility, err := svc.SectionVisibility()
	if err != nil {
		t.Fatalf("SectionVisibility returned error: %v", err)
	}

	if visibility.IsVisible("blog") {
		t.Fatal("expected blog section to be hidden")
	}
	if !visibility.IsVisible("hero") {
		t.Fatal("expected hero section to stay visible")
	}
	// 未出现在映射中的区块保持可见
	if !visibility.IsVisible("awards") {
		t.Fatal("expected unlisted section to default to visible")
	}
}

func TestSaveSectionVisibilityRejectsUnknownKey(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	err := svc.SaveSectionVisibility(map[string]bool{"banner": false})
	if !errors.Is(err, ErrUnknownSectionKey) {
		t.Fatalf("expected ErrUnknownSectionKey, got %v", err)
	}
}

func TestSetSectionVisiblePreservesOtherKeys(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	if err := svc.SaveSectionVisibility(map[string]bool{"blog": false}); err != nil {
		t.Fatalf("SaveSectionVisibility returned error: %v", err)
	}

	visibility, err := svc.SetSectionVisible("journey", false)
	if err != nil {
		t.Fatalf("SetSectionVisible returned error: %v", err)
	}

	if visibility.IsVisible("journey") {
		t.Fatal("expected journey to be hidden")
	}
	if visibility.IsVisible("blog") {
		t.Fatal("expected existing blog toggle to survive")
	}
}

func TestSetUpsertsExistingKey(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	if err := svc.Set("theme", map[string]string{"primaryColor": "#111111"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := svc.Set("theme", map[string]string{"primaryColor": "#222222"}); err != nil {
		t.Fatalf("second Set returned error: %v", err)
	}

	theme, err := svc.Theme()
	if err != nil {
		t.Fatalf("Theme returned error: %v", err)
	}
	if theme.PrimaryColor != "#222222" {
		t.Fatalf("expected last write to win, got %s", theme.PrimaryColor)
	}

	var count int64
	if err := svc.db.Model(&db.SiteSetting{}).Where("key = ?", "theme").Count(&count).Error; err != nil {
		t.Fatalf("count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row per key, got %d", count)
	}
}

func TestSaveThemeRejectsBadColor(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	err := svc.SaveTheme(ThemeSettings{PrimaryColor: "red"})
	if !errors.Is(err, ErrSettingInvalid) {
		t.Fatalf("expected ErrSettingInvalid, got %v", err)
	}

	if err := svc.SaveTheme(ThemeSettings{PrimaryColor: "#0ea5e9", AccentColor: "#fff"}); err != nil {
		t.Fatalf("expected valid colors to pass, got %v", err)
	}
}

func TestSavePolicyRequiresTitleAndContent(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	err := svc.SavePolicy(db.SettingKeyPrivacyPolicy, PolicyContent{Title: "隐私政策"})
	if !errors.Is(err, ErrSettingInvalid) {
		t.Fatalf("expected ErrSettingInvalid, got %v", err)
	}

	if err := svc.SavePolicy("random_policy", PolicyContent{Title: "t", Content: "c"}); !errors.Is(err, ErrUnknownSectionKey) {
		t.Fatalf("expected ErrUnknownSectionKey, got %v", err)
	}

	if err := svc.SavePolicy(db.SettingKeyCookiePolicy, PolicyContent{Title: "Cookie 政策", Content: "正文"}); err != nil {
		t.Fatalf("SavePolicy returned error: %v", err)
	}

	policy, err := svc.Policy(db.SettingKeyCookiePolicy)
	if err != nil {
		t.Fatalf("Policy returned error: %v", err)
	}
	if policy.Title != "Cookie 政策" {
		t.Fatalf("expected persisted policy, got %+v", policy)
	}
}

func TestSectionContentRoundTrip(t *testing.T) {
	svc, cleanup := setupSettingService(t)
	defer cleanup()

	content := map[string]string{"title": "我们的服务", "subtitle": "从咨询到交付"}
	if err := svc.SaveSectionContent("services", content); err != nil {
		t.Fatalf("SaveSectionContent returned error: %v", err)
	}

	loaded, err := svc.SectionContent("services")
	if err != nil {
		t.Fatalf("SectionContent returned error: %v", err)
	}
	if loaded["title"] != content["title"] || loaded["subtitle"] != content["subtitle"] {
		t.Fatalf("expected content round trip, got %+v", loaded)
	}

	if _, err := svc.SectionContent("banner"); !errors.Is(err, ErrUnknownSectionKey) {
		t.Fatalf("expected ErrUnknownSectionKey, got %v", err)
	}
}
