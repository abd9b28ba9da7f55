package db

import "gorm.io/gorm"

// Testimonial 表示客户评价。Rating 取值 1-5，允许为空。
type Testimonial struct {
	gorm.Model
	ClientName     string `gorm:"size:120;not null"`
	ClientPosition string `gorm:"size:120"`
	ClientCompany  string `gorm:"size:120"`
	ClientImage    string `gorm:"size:512"`
	Content        string `gorm:"type:text;not null"`
	Rating         *int
	IsPublished    bool `gorm:"default:true"`
	DisplayOrder   int  `gorm:"default:0"`
}

// TableName 自定义表名以保持命名一致。
func (Testimonial) TableName() string {
	return "testimonials"
}
