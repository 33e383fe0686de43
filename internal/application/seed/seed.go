// Package seed 启动时预置角色与演示账号
//
// 设计说明：
// 1. 幂等：角色用FirstOrCreate,用户先查邮箱再创建,重复启动不产生副作用
// 2. 种子失败只记录警告日志,不中断服务启动
//    （演示账号缺失不应让整个API不可用）
package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appuser "github.com/xiebiao/bookadmin/internal/application/user"
	"github.com/xiebiao/bookadmin/internal/domain/user"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
)

// 演示账号统一密码（仅用于本地开发与演示环境）
const demoPassword = "Fr33d0m!"

// seedUser 预置用户定义
type seedUser struct {
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

// 预置角色与演示账号
var (
	seedRoles = []string{
		user.RoleAdministrator,
		user.RoleStaff,
		user.RoleHelpdesk1,
		user.RoleCustomer,
	}

	seedUsers = []seedUser{
		{
			Email:     "admin@bookstore.co.nz",
			FirstName: "System",
			LastName:  "Admin",
			Roles:     []string{user.RoleAdministrator},
		},
		{
			Email:     "flic@felicitywinter.com",
			FirstName: "Felicity",
			LastName:  "Winter",
			Roles:     []string{user.RoleCustomer, user.RoleAdministrator},
		},
		{
			Email:     "felicity.sommers@gmail.com",
			FirstName: "Felicity",
			LastName:  "Sommers",
			Roles:     []string{user.RoleCustomer},
		},
	}
)

// Seeder 种子数据执行器
type Seeder struct {
	userService user.Service
	userRepo    user.Repository
	tx          appuser.Transactor
	log         *logger.Logger
}

// NewSeeder 创建种子数据执行器
func NewSeeder(userService user.Service, userRepo user.Repository, tx appuser.Transactor, log *logger.Logger) *Seeder {
	return &Seeder{
		userService: userService,
		userRepo:    userRepo,
		tx:          tx,
		log:         log.Named("seed"),
	}
}

// Run 执行种子数据预置
// 单个角色/用户失败只记警告并继续,整体永远返回nil
func (s *Seeder) Run(ctx context.Context) {
	// 1. 预置角色
	for _, name := range seedRoles {
		if err := s.userService.EnsureRole(ctx, name); err != nil {
			s.log.Warn("预置角色失败", zap.String("role", name), zap.Error(err))
		}
	}

	// 2. 预置演示账号
	for _, su := range seedUsers {
		if err := s.seedOneUser(ctx, su); err != nil {
			s.log.Warn("预置演示账号失败", zap.String("email", su.Email), zap.Error(err))
		}
	}

	s.log.Info("种子数据预置完成")
}

// seedOneUser 预置单个演示账号（幂等）
// 已存在的用户只补齐缺失的角色,不重置密码
func (s *Seeder) seedOneUser(ctx context.Context, su seedUser) error {
	existing, err := s.userRepo.FindByEmail(ctx, su.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return err
	}
	if err == nil {
		// 已存在：补齐缺失角色
		for _, role := range su.Roles {
			if existing.HasRole(role) {
				continue
			}
			if err := s.userRepo.AddToRole(ctx, existing.ID, role); err != nil {
				return err
			}
		}
		return nil
	}

	// 不存在：事务内创建用户并分配全部角色
	hashed, err := s.userService.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		u := user.NewUser(su.Email, hashed, su.FirstName, su.LastName)
		if err := s.userRepo.Create(ctx, u); err != nil {
			return err
		}
		for _, role := range su.Roles {
			if err := s.userRepo.AddToRole(ctx, u.ID, role); err != nil {
				return err
			}
		}
		return nil
	})
}
