package db

import "gorm.io/gorm"

// ContactMessage 表示前台联系表单提交的留言。
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:120;not null"`
	Email   string `gorm:"size:255;not null"`
	Company string `gorm:"size:120"`
	Service string `gorm:"size:120"`
	Message string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"default:false"`
}

// TableName 自定义表名以保持命名一致。
func (ContactMessage) TableName() string {
	return "contact_messages"
}
