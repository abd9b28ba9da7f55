package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSettingNotFound 在指定的设置项不存在时返回
	ErrSettingNotFound = errors.New("site setting not found")
	// ErrSettingInvalid 在设置值不符合该键约定的结构时返回
	ErrSettingInvalid = errors.New("invalid site setting value")
	// ErrUnknownSectionKey 在写入显隐映射出现未知区块时返回
	ErrUnknownSectionKey = errors.New("unknown section key")
)

const settingResource = "site_settings"

// SectionKeys 是前台可显隐的区块集合，与前端页面组成一一对应。
var SectionKeys = []string{
	"hero", "about", "stats", "portfolio", "services", "solutions",
	"clients", "blog", "journey", "awards", "consultancy", "contact",
}

// ContentSectionKeys 是后台可编辑文案的区块集合。
var ContentSectionKeys = []string{
	"hero", "services", "about", "stats", "contact", "consultancy", "footer",
}

// PolicyKeys 是政策文档对应的设置键。
var PolicyKeys = []string{
	db.SettingKeyPrivacyPolicy,
	db.SettingKeyTermsConditions,
	db.SettingKeyCookiePolicy,
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SectionVisibilityMap 记录区块的显隐状态。
// 缺失的键视为可见，只有显式 false 才隐藏区块。
type SectionVisibilityMap map[string]bool

// IsVisible 判断区块是否可见。
func (m SectionVisibilityMap) IsVisible(key string) bool {
	visible, ok := m[key]
	return !ok || visible
}

// ThemeSettings 描述主题颜色配置，取值为 CSS 十六进制颜色。
type ThemeSettings struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	GradientStart  string `json:"gradientStart"`
	GradientEnd    string `json:"gradientEnd"`
}

// SocialLinks 描述页脚展示的社交媒体链接。
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// PolicyContent 描述一篇政策文档。
type PolicyContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SiteSettingService 提供站点设置的读取与更新能力。
// 每个已知键有约定的结构，在读写边界做校验；未知键按原始 JSON 透传。
type SiteSettingService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewSiteSettingService 构造 SiteSettingService。
func NewSiteSettingService(gdb *gorm.DB, c *cache.Cache) *SiteSettingService {
	return &SiteSettingService{db: gdb, cache: c}
}

// All 返回全部设置，键到原始 JSON 文档的映射。
func (s *SiteSettingService) All() (map[string]json.RawMessage, error) {
	ctx := context.Background()

	result := make(map[string]json.RawMessage)
	if s.cache.GetJSON(ctx, settingResource, "all", &result) {
		return result, nil
	}

	var records []db.SiteSetting
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		result[record.Key] = json.RawMessage(record.Value)
	}

	s.cache.SetJSON(ctx, settingResource, "all", result)
	return result, nil
}

// Get 读取单个设置的原始 JSON 文档。
func (s *SiteSettingService) Get(key string) (json.RawMessage, error) {
	var record db.SiteSetting
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("get site setting %s: %w", key, err)
	}
	return json.RawMessage(record.Value), nil
}

// Set 写入单个设置，不存在时创建。
func (s *SiteSettingService) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode site setting %s: %w", key, err)
	}

	setting := db.SiteSetting{Key: key, Value: datatypes.JSON(raw)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      string(raw),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert site setting %s: %w", key, err)
	}

	s.cache.Invalidate(context.Background(), settingResource)
	return nil
}

// SectionVisibility 读取区块显隐映射。未配置或值损坏时返回空映射，即全部可见。
func (s *SiteSettingService) SectionVisibility() (SectionVisibilityMap, error) {
	raw, err := s.Get(db.SettingKeySectionVisibility)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return SectionVisibilityMap{}, nil
		}
		return nil, err
	}

	// 容忍历史数据中的非布尔值，只认显式的 true/false。
	var loose map[string]interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return SectionVisibilityMap{}, nil
	}

	result := make(SectionVisibilityMap, len(loose))
	for key, value := range loose {
		if visible, ok := value.(bool); ok {
			result[key] = visible
		}
	}
	return result, nil
}

// SaveSectionVisibility 整体保存区块显隐映射，一次写入。
func (s *SiteSettingService) SaveSectionVisibility(visibility map[string]bool) error {
	for key := range visibility {
		if !isKnownSection(key) {
			return fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
		}
	}
	return s.Set(db.SettingKeySectionVisibility, visibility)
}

// SetSectionVisible 切换单个区块的显隐，其余键保持不变。
func (s *SiteSettingService) SetSectionVisible(key string, visible bool) (SectionVisibilityMap, error) {
	if !isKnownSection(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
	}

	current, err := s.SectionVisibility()
	if err != nil {
		return nil, err
	}

	current[key] = visible
	if err := s.Set(db.SettingKeySectionVisibility, map[string]bool(current)); err != nil {
		return nil, err
	}
	return current, nil
}

// Theme 读取主题颜色配置，未配置时返回零值。
func (s *SiteSettingService) Theme() (ThemeSettings, error) {
	var theme ThemeSettings
	raw, err := s.Get(db.SettingKeyTheme)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return theme, nil
		}
		return theme, err
	}
	if err := json.Unmarshal(raw, &theme); err != nil {
		return ThemeSettings{}, fmt.Errorf("%w: theme", ErrSettingInvalid)
	}
	return theme, nil
}

// SaveTheme 保存主题颜色配置，非法颜色值在写入前被拒绝。
func (s *SiteSettingService) SaveTheme(theme ThemeSettings) error {
	colors := []string{
		theme.PrimaryColor, theme.SecondaryColor, theme.AccentColor,
		theme.GradientStart, theme.GradientEnd,
	}
	for _, color := range colors {
		trimmed := strings.TrimSpace(color)
		if trimmed != "" && !hexColorPattern.MatchString(trimmed) {
			return fmt.Errorf("%w: bad color %q", ErrSettingInvalid, color)
		}
	}
	return s.Set(db.SettingKeyTheme, theme)
}

// SocialLinks 读取社交媒体链接，未配置时返回零值。
func (s *SiteSettingService) SocialLinks() (SocialLinks, error) {
	var links SocialLinks
	raw, err := s.Get(db.SettingKeySocialLinks)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return links, nil
		}
		return links, err
	}
	if err := json.Unmarshal(raw, &links); err != nil {
		return SocialLinks{}, fmt.Errorf("%w: social_links", ErrSettingInvalid)
	}
	return links, nil
}

// SaveSocialLinks 保存社交媒体链接。
func (s *SiteSettingService) SaveSocialLinks(links SocialLinks) error {
	return s.Set(db.SettingKeySocialLinks, links)
}

// SectionContent 读取指定区块的文案字段，未配置时返回空映射。
func (s *SiteSettingService) SectionContent(key string) (map[string]string, error) {
	if !isKnownContentSection(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
	}

	raw, err := s.Get(key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	content := make(map[string]string)
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("%w: section %s", ErrSettingInvalid, key)
	}
	return content, nil
}

// SaveSectionContent 整体保存指定区块的文案字段。
func (s *SiteSettingService) SaveSectionContent(key string, content map[string]string) error {
	if !isKnownContentSection(key) {
		return fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
	}
	return s.Set(key, content)
}

// Policy 读取指定政策文档，未配置时返回零值。
func (s *SiteSettingService) Policy(key string) (PolicyContent, error) {
	var policy PolicyContent
	if !isKnownPolicy(key) {
		return policy, fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
	}

	raw, err := s.Get(key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return policy, nil
		}
		return policy, err
	}
	if err := json.Unmarshal(raw, &policy); err != nil {
		return PolicyContent{}, fmt.Errorf("%w: policy %s", ErrSettingInvalid, key)
	}
	return policy, nil
}

// SavePolicy 保存指定政策文档，标题与正文均为必填。
func (s *SiteSettingService) SavePolicy(key string, policy PolicyContent) error {
	if !isKnownPolicy(key) {
		return fmt.Errorf("%w: %s", ErrUnknownSectionKey, key)
	}
	if strings.TrimSpace(policy.Title) == "" || strings.TrimSpace(policy.Content) == "" {
		return fmt.Errorf("%w: policy title and content are required", ErrSettingInvalid)
	}
	return s.Set(key, policy)
}

// Images 读取站点图片槽位映射，未配置时返回空映射。
func (s *SiteSettingService) Images() (map[string]string, error) {
	raw, err := s.Get(db.SettingKeyImages)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	images := make(map[string]string)
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, fmt.Errorf("%w: images", ErrSettingInvalid)
	}
	return images, nil
}

// SaveImages 整体保存站点图片槽位映射。
func (s *SiteSettingService) SaveImages(images map[string]string) error {
	return s.Set(db.SettingKeyImages, images)
}

func isKnownSection(key string) bool {
	for _, candidate := range SectionKeys {
		if key == candidate {
			return true
		}
	}
	return false
}

func isKnownContentSection(key string) bool {
	for _, candidate := range ContentSectionKeys {
		if key == candidate {
			return true
		}
	}
	return false
}

func isKnownPolicy(key string) bool {
	for _, candidate := range PolicyKeys {
		if key == candidate {
			return true
		}
	}
	return false
}
