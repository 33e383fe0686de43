package user

import (
	"time"
)

// 系统内置角色
// 注册用户默认获得Customer角色,其余角色由管理员分配或种子数据预置
const (
	RoleAdministrator = "Administrator"
	RoleStaff         = "Staff"
	RoleHelpdesk1     = "Helpdesk1"
	RoleCustomer      = "Customer"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，包含用户的核心属性和角色列表
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	Roles     []string // 角色名列表(如Administrator、Customer)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role 角色实体
// 与User是多对多关系(user_roles中间表)
type Role struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasRole 检查用户是否拥有指定角色
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole 添加角色（幂等,已有时不重复添加）
func (u *User) AddRole(role string) {
	if u.HasRole(role) {
		return
	}
	u.Roles = append(u.Roles, role)
	u.UpdatedAt = time.Now()
}
