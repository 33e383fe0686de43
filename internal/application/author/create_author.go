package author

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/author"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// CreateAuthorUseCase 创建作者用例
// 设计说明：
// 1. Application层负责用例编排：调用领域服务、发布审计事件、打点
// 2. 审计事件发布失败不影响主流程，只记录日志
type CreateAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
	log           *logger.Logger
}

// NewCreateAuthorUseCase 创建用例
func NewCreateAuthorUseCase(authorService author.Service, publisher mq.EventPublisher, log *logger.Logger) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{
		authorService: authorService,
		publisher:     publisher,
		log:           log,
	}
}

// Execute 执行创建
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	a, err := uc.authorService.CreateAuthor(ctx, req.FirstName, req.LastName, req.Bio)
	if err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "author", "op": "create", "result": "failure",
		})
		return nil, err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "author", "op": "create", "result": "success",
	})

	// 发布审计事件（失败只记日志，不影响主流程）
	if err := uc.publisher.Publish(ctx, "author.created", AuditEvent{
		Entity: "author", ID: a.ID, Action: "created",
	}); err != nil {
		uc.log.Warn("发布author.created事件失败", zap.Uint("author_id", a.ID), zap.Error(err))
	}

	return toAuthorResponse(a), nil
}

// =========================================
// 应用层DTO
// =========================================

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	FirstName string
	LastName  string
	Bio       string
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuditEvent 实体生命周期审计事件
type AuditEvent struct {
	Entity string `json:"entity"`
	ID     uint   `json:"id"`
	Action string `json:"action"`
}

// toAuthorResponse 领域实体 → 应用层DTO
func toAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
