package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证、角色分配）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册（自动分配Customer角色）
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error

	// AssignRole 为用户分配角色
	AssignRole(ctx context.Context, userID uint, roleName string) error

	// EnsureRole 确保角色存在（不存在则创建,幂等）
	EnsureRole(ctx context.Context, name string) error

	// HashPassword 生成密码哈希（种子数据预置用户时使用）
	HashPassword(password string) (string, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（8-26位，包含字母和数字）
// 3. 密码bcrypt加密（cost=12）
// 4. 邮箱唯一性由数据库UNIQUE索引保证
// 5. 注册成功后分配Customer角色
func (s *service) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	// 1. 邮箱格式校验
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 2. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 3. 密码加密
	// 学习要点：
	// - bcrypt自动加盐，每次加密结果都不同（即使密码相同）
	// - cost=12是推荐值，平衡安全性与性能（cost每+1，耗时翻倍）
	// - 不要使用MD5/SHA1，已被证明不安全（彩虹表攻击）
	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// 4. 创建用户实体并持久化
	u := NewUser(email, hashedPassword, firstName, lastName)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	// 5. 分配默认角色
	if err := s.repo.AddToRole(ctx, u.ID, RoleCustomer); err != nil {
		return nil, err
	}
	u.AddRole(RoleCustomer)

	return u, nil
}

// Login 用户登录
// 业务规则：
// 1. 邮箱必须存在且密码正确
// 2. 邮箱不存在与密码错误返回同一个ErrInvalidCredentials,
//    防止通过401/404的差异枚举已注册邮箱
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	// 1. 根据邮箱查找用户
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. 验证密码
	if err := s.ValidatePassword(u.Password, password); err != nil {
		return nil, err // 返回ErrInvalidCredentials
	}

	return u, nil
}

// ValidatePassword 验证密码
// 说明：登录时使用，验证明文密码与哈希值是否匹配
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidCredentials
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// AssignRole 为用户分配角色
func (s *service) AssignRole(ctx context.Context, userID uint, roleName string) error {
	return s.repo.AddToRole(ctx, userID, roleName)
}

// EnsureRole 确保角色存在
func (s *service) EnsureRole(ctx context.Context, name string) error {
	return s.repo.CreateRole(ctx, name)
}

// HashPassword 生成bcrypt密码哈希
func (s *service) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", apperrors.Wrap(err, "密码加密失败")
	}
	return string(hashed), nil
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验
// 规则：8-26位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 26 {
		return ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}
