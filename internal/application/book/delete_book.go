package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/book"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
	log         *logger.Logger
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, publisher mq.EventPublisher, log *logger.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		publisher:   publisher,
		log:         log,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "book", "op": "delete", "result": "failure",
		})
		return err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "book", "op": "delete", "result": "success",
	})

	if err := uc.publisher.Publish(ctx, "book.deleted", AuditEvent{
		Entity: "book", ID: id, Action: "deleted",
	}); err != nil {
		uc.log.Warn("发布book.deleted事件失败", zap.Uint("book_id", id), zap.Error(err))
	}

	return nil
}
