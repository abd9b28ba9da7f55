package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project 表示作品集中的一条项目案例
// Tags 以 JSON 数组形式落库
// IsPublished 控制是否在前台 portfolio 区块展示
// DisplayOrder 越小越靠前

type Project struct {
	gorm.Model
	Title        string                      `gorm:"size:255;not null"`
	Category     string                      `gorm:"size:100;not null"`
	Description  string                      `gorm:"type:text"`
	ImageURL     string                      `gorm:"size:512"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:text"`
	IsPublished  bool                        `gorm:"default:true"`
	DisplayOrder int                         `gorm:"default:0"`
}

// TableName 返回自定义表名，避免冲突
func (Project) TableName() string {
	return "projects"
}
