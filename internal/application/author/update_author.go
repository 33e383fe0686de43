package author

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/author"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// UpdateAuthorUseCase 作者更新用例（PUT整体替换语义）
// 设计说明：
// 1. 请求体ID与路径ID不一致时直接拒绝（ErrIDMismatch → 400），
//    不触碰存储层
// 2. 请求体未带ID（0值）视为省略，以路径ID为准
type UpdateAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
	log           *logger.Logger
}

// NewUpdateAuthorUseCase 创建更新用例
func NewUpdateAuthorUseCase(authorService author.Service, publisher mq.EventPublisher, log *logger.Logger) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{
		authorService: authorService,
		publisher:     publisher,
		log:           log,
	}
}

// UpdateAuthorRequest 更新作者请求
type UpdateAuthorRequest struct {
	ID        uint // 请求体中的ID（可省略，省略时为0）
	FirstName string
	LastName  string
	Bio       string
}

// Execute 执行更新
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, pathID uint, req UpdateAuthorRequest) error {
	// ID一致性校验：先于任何存储操作
	if req.ID != 0 && req.ID != pathID {
		return apperrors.ErrIDMismatch
	}

	err := uc.authorService.ReplaceAuthor(ctx, pathID, req.FirstName, req.LastName, req.Bio)
	if err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "author", "op": "update", "result": "failure",
		})
		return err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "author", "op": "update", "result": "success",
	})

	if err := uc.publisher.Publish(ctx, "author.updated", AuditEvent{
		Entity: "author", ID: pathID, Action: "updated",
	}); err != nil {
		uc.log.Warn("发布author.updated事件失败", zap.Uint("author_id", pathID), zap.Error(err))
	}

	return nil
}
