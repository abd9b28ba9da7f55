package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blog 表示一篇博客文章
// Content 为 Markdown 原文，前台渲染时转为安全的 HTML
// Slug 全局唯一，作为公开访问路径
// PublishedAt 在首次发布时写入

type Blog struct {
	gorm.Model
	Title       string                      `gorm:"size:255;not null"`
	Slug        string                      `gorm:"size:255;uniqueIndex;not null"`
	Excerpt     string                      `gorm:"type:text"`
	Content     string                      `gorm:"type:text;not null"`
	CoverImage  string                      `gorm:"size:512"`
	Author      string                      `gorm:"size:120;not null;default:RaS Techno"`
	Category    string                      `gorm:"size:100"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:text"`
	IsPublished bool                        `gorm:"default:false"`
	PublishedAt *time.Time
}

// TableName 返回自定义表名，避免冲突
func (Blog) TableName() string {
	return "blogs"
}
