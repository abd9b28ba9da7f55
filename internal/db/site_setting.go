package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteSetting 存储后台可配置的站点级键值对。Value 为任意 JSON 文档。
type SiteSetting struct {
	gorm.Model
	Key   string         `gorm:"size:100;uniqueIndex;not null"`
	Value datatypes.JSON `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySectionVisibility 表示前台各区块的显隐映射。
	SettingKeySectionVisibility = "section_visibility"
	// SettingKeyTheme 表示主题颜色配置。
	SettingKeyTheme = "theme"
	// SettingKeySocialLinks 表示社交媒体链接。
	SettingKeySocialLinks = "social_links"
	// SettingKeyImages 表示站点图片槽位（Logo、Hero 配图等）。
	SettingKeyImages = "images"
	// SettingKeyPrivacyPolicy 表示隐私政策正文。
	SettingKeyPrivacyPolicy = "privacy_policy"
	// SettingKeyTermsConditions 表示服务条款正文。
	SettingKeyTermsConditions = "terms_conditions"
	// SettingKeyCookiePolicy 表示 Cookie 政策正文。
	SettingKeyCookiePolicy = "cookie_policy"
)
