package author

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/author"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// BookCounter 图书计数接口
// 由图书仓储实现,应用层依赖接口便于测试时用内存实现替代
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// DeleteAuthorUseCase 作者删除用例
// 名下仍有图书的作者不可删除:
// 先用图书计数给出带数量的友好错误,数据库外键约束兜底并发窗口
type DeleteAuthorUseCase struct {
	authorService author.Service
	bookCounter   BookCounter
	publisher     mq.EventPublisher
	log           *logger.Logger
}

// NewDeleteAuthorUseCase 创建删除用例
func NewDeleteAuthorUseCase(authorService author.Service, bookCounter BookCounter, publisher mq.EventPublisher, log *logger.Logger) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorService: authorService,
		bookCounter:   bookCounter,
		publisher:     publisher,
		log:           log,
	}
}

// Execute 执行删除
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	// 预检:名下有图书时直接拒绝并告知数量
	count, err := uc.bookCounter.CountByAuthor(ctx, id)
	if err != nil {
		// 计数失败不中断删除,外键约束仍会拦住有图书的作者
		uc.log.Warn("统计作者图书数量失败", zap.Uint("author_id", id), zap.Error(err))
	} else if count > 0 {
		return apperrors.New(apperrors.ErrCodeAuthorHasBooks,
			fmt.Sprintf("作者名下仍有%d本图书,不可删除", count))
	}

	if err := uc.authorService.DeleteAuthor(ctx, id); err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "author", "op": "delete", "result": "failure",
		})
		return err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "author", "op": "delete", "result": "success",
	})

	if err := uc.publisher.Publish(ctx, "author.deleted", AuditEvent{
		Entity: "author", ID: id, Action: "deleted",
	}); err != nil {
		uc.log.Warn("发布author.deleted事件失败", zap.Uint("author_id", id), zap.Error(err))
	}

	return nil
}
