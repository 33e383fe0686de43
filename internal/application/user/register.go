package user

import (
	"context"

	"github.com/xiebiao/bookadmin/internal/domain/user"
	"github.com/xiebiao/bookadmin/pkg/metrics"
)

// Transactor 事务执行器接口
// 由infrastructure/persistence/mysql.TxManager实现,
// 应用层依赖接口便于测试时用直通实现替代
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调多个领域服务
// 2. 注册与默认角色分配在同一事务中执行：
//    角色分配失败时回滚用户创建，不留下无角色的"半成品"用户
type RegisterUseCase struct {
	userService user.Service
	tx          Transactor
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, tx Transactor) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		tx:          tx,
	}
}

// Execute 执行注册
// 返回：RegisterResponse（应用层DTO，不是领域实体）
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var registered *user.User

	// 注册（创建用户+分配Customer角色）在一个事务中
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		u, err := uc.userService.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			return err
		}
		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.UsersRegisteredTotal)

	// 领域实体 → 应用层DTO
	// 说明：不直接返回领域实体，而是转换为DTO
	// 好处：领域模型变更不影响API契约
	return &RegisterResponse{
		ID:        registered.ID,
		Email:     registered.Email,
		FirstName: registered.FirstName,
		LastName:  registered.LastName,
		Roles:     registered.Roles,
	}, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterResponse 注册响应
// 说明：不返回密码字段（安全考虑）
type RegisterResponse struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}
