package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceItem 表示前台 services 区块的一项服务能力。
// Icon 字段用于匹配前端内置的图标，Color 为卡片主题色。
type ServiceItem struct {
	gorm.Model
	Title        string                      `gorm:"size:255;not null"`
	Description  string                      `gorm:"type:text;not null"`
	Icon         string                      `gorm:"size:50"`
	Color        string                      `gorm:"size:50"`
	Features     datatypes.JSONSlice[string] `gorm:"type:text"`
	IsActive     bool                        `gorm:"default:true"`
	DisplayOrder int                         `gorm:"default:0"`
}

// TableName 自定义表名以保持命名一致。
func (ServiceItem) TableName() string {
	return "services"
}
