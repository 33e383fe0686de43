package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/book"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// UpdateBookUseCase 图书更新用例（PUT整体替换语义）
// 设计说明：
// 1. 请求体ID与路径ID不一致时直接拒绝（ErrIDMismatch → 400），
//    不触碰存储层
// 2. 请求体未带ID（0值）视为省略，以路径ID为准
type UpdateBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
	log         *logger.Logger
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, publisher mq.EventPublisher, log *logger.Logger) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		publisher:   publisher,
		log:         log,
	}
}

// UpdateBookRequest 更新图书请求
type UpdateBookRequest struct {
	ID       uint // 请求体中的ID（可省略，省略时为0）
	Title    string
	Year     *int
	ISBN     string
	Summary  string
	Image    string
	Price    *int64
	AuthorID uint
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, pathID uint, req UpdateBookRequest) error {
	// ID一致性校验：先于任何存储操作
	if req.ID != 0 && req.ID != pathID {
		return apperrors.ErrIDMismatch
	}

	err := uc.bookService.ReplaceBook(ctx, pathID, req.Title, req.Year, req.ISBN, req.Summary, req.Image, req.Price, req.AuthorID)
	if err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "book", "op": "update", "result": "failure",
		})
		return err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "book", "op": "update", "result": "success",
	})

	if err := uc.publisher.Publish(ctx, "book.updated", AuditEvent{
		Entity: "book", ID: pathID, Action: "updated",
	}); err != nil {
		uc.log.Warn("发布book.updated事件失败", zap.Uint("book_id", pathID), zap.Error(err))
	}

	return nil
}
