package db

import "gorm.io/gorm"

const (
	// RoleAdmin 拥有后台全部权限。
	RoleAdmin = "admin"
	// RoleUser 仅保留只读访问，预留给未来的协作者账号。
	RoleUser = "user"
)

// User 表示后台账号。Password 存储 bcrypt 哈希。
type User struct {
	gorm.Model
	Username string `gorm:"size:64;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`
	Role     string `gorm:"size:20;not null;default:admin"`
}

// TableName 自定义表名以保持命名一致。
func (User) TableName() string {
	return "users"
}
