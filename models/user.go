package models

import (
	"time"

	"gorm.io/gorm"
)

// 性别取值
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// User 用户模型
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:100"`
	Nickname  string         `json:"nickname" gorm:"size:50"`
	Birthday  *time.Time     `json:"birthday"`
	Gender    string         `json:"gender" gorm:"size:10"`         // M/F/O，空表示未填写
	IsActive  bool           `json:"is_active" gorm:"default:true"` // 冻结后不可登录
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// IsValidGender 校验性别取值
func IsValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
