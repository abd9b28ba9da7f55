package db

import "gorm.io/gorm"

// Client 表示合作客户的品牌展示信息。
type Client struct {
	gorm.Model
	Name         string `gorm:"size:120;not null"`
	LogoURL      string `gorm:"size:512"`
	WebsiteURL   string `gorm:"size:512"`
	Description  string `gorm:"type:text"`
	IsActive     bool   `gorm:"default:true"`
	DisplayOrder int    `gorm:"default:0"`
}

// TableName 自定义表名以保持命名一致。
func (Client) TableName() string {
	return "clients"
}
