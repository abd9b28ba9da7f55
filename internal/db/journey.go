package db

import "gorm.io/gorm"

// JourneyMilestone 表示发展历程时间轴上的一个节点。
// Year 使用字符串以支持 "2020 - 2022" 这类区间写法。
type JourneyMilestone struct {
	gorm.Model
	Year         string `gorm:"size:50;not null"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Icon         string `gorm:"size:50"`
	IsActive     bool   `gorm:"default:true"`
	DisplayOrder int    `gorm:"default:0"`
}

// TableName 自定义表名以保持命名一致。
func (JourneyMilestone) TableName() string {
	return "journey_milestones"
}
