package entity

import (
	"time"
)

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleManager     UserRole = "manager"
	RoleFieldWorker UserRole = "field-worker"
	RoleViewer      UserRole = "viewer"
)

// Valid 校验角色是否属于支持的枚举
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleFieldWorker, RoleViewer:
		return true
	}
	return false
}

// User 用户，email 全局唯一
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
