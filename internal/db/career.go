package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobPost 表示一条招聘信息
// Requirements/Benefits 以 JSON 数组形式落库
// ExpiresAt 为空表示长期有效

type JobPost struct {
	gorm.Model
	Title          string                      `gorm:"size:255;not null"`
	Department     string                      `gorm:"size:120"`
	Location       string                      `gorm:"size:120"`
	EmploymentType string                      `gorm:"size:50"`
	Description    string                      `gorm:"type:text;not null"`
	Requirements   datatypes.JSONSlice[string] `gorm:"type:text"`
	Benefits       datatypes.JSONSlice[string] `gorm:"type:text"`
	SalaryRange    string                      `gorm:"size:120"`
	IsActive       bool                        `gorm:"default:true"`
	PostedAt       time.Time
	ExpiresAt      *time.Time
}

// TableName 返回自定义表名，避免冲突
func (JobPost) TableName() string {
	return "job_posts"
}

// 应聘状态流转仅作约定，不在存储层强制。
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusHired       = "hired"
	ApplicationStatusRejected    = "rejected"
)

// JobApplication 表示针对某条招聘信息的应聘记录。
// JobPost 外键仅作信息关联，删除职位不会级联删除应聘记录。
type JobApplication struct {
	gorm.Model
	JobPostID       uint    `gorm:"index;not null"`
	JobPost         JobPost `gorm:"constraint:OnDelete:SET NULL"`
	Name            string  `gorm:"size:120;not null"`
	Email           string  `gorm:"size:255;not null"`
	Phone           string  `gorm:"size:50"`
	LinkedinURL     string  `gorm:"size:512"`
	ResumeURL       string  `gorm:"size:512"`
	CoverLetter     string  `gorm:"type:text"`
	CurrentCompany  string  `gorm:"size:120"`
	ExperienceYears *int
	Status          string `gorm:"size:30;not null;default:pending"`
	IsRead          bool   `gorm:"default:false"`
}

// TableName 返回自定义表名，避免冲突
func (JobApplication) TableName() string {
	return "job_applications"
}
