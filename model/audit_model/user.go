package audit_model

import "time"

// 用户状态
const (
	UserStatusNormal   = 1 // 正常
	UserStatusDisabled = 2 // 已封禁
)

// AppUser 平台用户
type AppUser struct {
	ID         string    `json:"id" gorm:"primarykey;size:64"`
	Username   string    `json:"username" gorm:"size:100"`
	Status     int       `json:"status" gorm:"type:tinyint;default:1"` // 状态：1正常 2已封禁
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}

// TableName 指定表名
func (AppUser) TableName() string {
	return "app_users"
}
