package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 这样domain层不依赖任何外部框架（GORM、sqlx等）
// 4. 便于单元测试（Mock此接口）
type Repository interface {
	// Create 创建用户
	// 注意：如果邮箱已存在，应返回ErrEmailDuplicate
	Create(ctx context.Context, u *User) error

	// FindByID 根据ID查找用户（含角色列表）
	// 如果不存在，返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户（含角色列表）
	// 如果不存在，返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新用户信息
	Update(ctx context.Context, u *User) error

	// Delete 删除用户（软删除）
	Delete(ctx context.Context, id uint) error

	// AddToRole 为用户添加角色（幂等）
	// 角色不存在返回ErrRoleNotFound
	AddToRole(ctx context.Context, userID uint, roleName string) error

	// RoleExists 检查角色是否存在
	RoleExists(ctx context.Context, name string) (bool, error)

	// CreateRole 创建角色（已存在时幂等返回nil）
	CreateRole(ctx context.Context, name string) error
}
