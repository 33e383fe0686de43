package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookadmin/internal/domain/user"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// userRepository 用户仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如邮箱重复），转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
// 学习要点：
// 1. 邮箱唯一性由数据库UNIQUE索引保证（而非应用层SELECT再INSERT）
// 2. 捕获MySQL的Duplicate Entry错误，转换为业务错误ErrEmailDuplicate
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	// 回填自增ID（GORM自动填充）
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找用户（含角色列表）
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Preload("Roles").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户（含角色列表）
// 学习要点：
// 1. 邮箱字段有UNIQUE索引，查询效率高
// 2. 使用First而非Find，因为只需要一条记录
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Preload("Roles").Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// Update 更新用户信息
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	model := &UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}

	// Save更新所有字段（角色关联通过AddToRole单独维护）
	if err := getDB(ctx, r.db).Omit("Roles").Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新用户失败")
	}

	u.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除用户（软删除）
// 学习要点：
// 1. GORM的软删除：DELETE操作会自动变成UPDATE deleted_at
// 2. 后续查询会自动过滤deleted_at不为NULL的记录
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&UserModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除用户失败")
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// AddToRole 为用户添加角色（幂等）
// 学习要点：many2many关联用Association API维护中间表,
// Append对已存在的关联不会重复插入
func (r *userRepository) AddToRole(ctx context.Context, userID uint, roleName string) error {
	db := getDB(ctx, r.db)

	// 1. 查找角色
	var role RoleModel
	err := db.Where("name = ?", roleName).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrRoleNotFound
		}
		return apperrors.Wrap(err, "查询角色失败")
	}

	// 2. 追加关联（幂等）
	model := UserModel{ID: userID}
	if err := db.Model(&model).Association("Roles").Append(&role); err != nil {
		return apperrors.Wrap(err, "分配角色失败")
	}

	return nil
}

// RoleExists 检查角色是否存在
func (r *userRepository) RoleExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&RoleModel{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询角色失败")
	}
	return count > 0, nil
}

// CreateRole 创建角色（已存在时幂等返回nil）
func (r *userRepository) CreateRole(ctx context.Context, name string) error {
	role := RoleModel{Name: name}
	err := getDB(ctx, r.db).Where("name = ?", name).FirstOrCreate(&role).Error
	if err != nil {
		// 并发窗口内其他连接已插入同名角色,视为成功
		if isDuplicateError(err) {
			return nil
		}
		return apperrors.Wrap(err, "创建角色失败")
	}
	return nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toUserEntity GORM模型 → 领域实体
// 说明：这是Repository的重要职责之一，隔离infrastructure层与domain层
func toUserEntity(model *UserModel) *user.User {
	roles := make([]string, len(model.Roles))
	for i, r := range model.Roles {
		roles[i] = r.Name
	}
	return &user.User{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Roles:     roles,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
