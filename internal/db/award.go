package db

import (
	"time"

	"gorm.io/gorm"
)

// Award 表示获得的奖项或认证。
type Award struct {
	gorm.Model
	Title        string `gorm:"size:255;not null"`
	Issuer       string `gorm:"size:120"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"size:512"`
	DateReceived *time.Time
	IsActive     bool `gorm:"default:true"`
	DisplayOrder int  `gorm:"default:0"`
}

// TableName 自定义表名以保持命名一致。
func (Award) TableName() string {
	return "awards"
}
