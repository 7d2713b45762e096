// Package permission 角色权限表
// 静态的角色 → (资源, 操作) 映射，不支持动态授权，也不做按记录的归属判断
package permission

import (
	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// Permission 资源-操作对
type Permission struct {
	Resource string
	Action   string
}

var rolePermissions = map[entity.UserRole][]Permission{
	entity.RoleAdmin: {
		{"forms", "create"},
		{"forms", "read"},
		{"forms", "update"},
		{"forms", "delete"},
		{"submissions", "read"},
		{"submissions", "delete"},
		{"work-orders", "create"},
		{"work-orders", "read"},
		{"work-orders", "update"},
		{"work-orders", "delete"},
		{"users", "create"},
		{"users", "read"},
		{"users", "update"},
		{"users", "delete"},
		{"analytics", "read"},
	},
	entity.RoleManager: {
		{"forms", "create"},
		{"forms", "read"},
		{"forms", "update"},
		{"submissions", "read"},
		{"work-orders", "create"},
		{"work-orders", "read"},
		{"work-orders", "update"},
		{"analytics", "read"},
	},
	entity.RoleFieldWorker: {
		{"forms", "read"},
		{"submissions", "create"},
		{"submissions", "read"},
		{"work-orders", "read"},
		{"work-orders", "update"},
	},
	entity.RoleViewer: {
		{"forms", "read"},
		{"submissions", "read"},
		{"analytics", "read"},
	},
}

// HasPermission 判断角色是否允许对资源执行操作
func HasPermission(role entity.UserRole, resource, action string) bool {
	for _, p := range rolePermissions[role] {
		if p.Resource == resource && p.Action == action {
			return true
		}
	}
	return false
}

// CanCreateForms 是否可以创建表单
func CanCreateForms(role entity.UserRole) bool {
	return HasPermission(role, "forms", "create")
}

// CanDeleteForms 是否可以删除表单
func CanDeleteForms(role entity.UserRole) bool {
	return HasPermission(role, "forms", "delete")
}

// CanManageUsers 是否可以管理用户
func CanManageUsers(role entity.UserRole) bool {
	return HasPermission(role, "users", "create")
}

// CanViewAnalytics 是否可以查看统计
func CanViewAnalytics(role entity.UserRole) bool {
	return HasPermission(role, "analytics", "read")
}
