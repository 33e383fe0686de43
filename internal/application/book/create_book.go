package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/domain/book"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// CreateBookUseCase 图书创建用例
// 设计说明:
// 1. 应用层不直接操作Repository,通过领域服务间接操作
// 2. 业务规则校验由领域服务负责(ISBN格式、作者外键预检等)
// 3. 应用层负责流程编排、审计事件与打点
type CreateBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
	log         *logger.Logger
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, publisher mq.EventPublisher, log *logger.Logger) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		publisher:   publisher,
		log:         log,
	}
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Year, req.ISBN, req.Summary, req.Image, req.Price, req.AuthorID)
	if err != nil {
		metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
			"entity": "book", "op": "create", "result": "failure",
		})
		return nil, err
	}

	metrics.IncCounterVec(metrics.EntityWritesTotal, map[string]string{
		"entity": "book", "op": "create", "result": "success",
	})

	if err := uc.publisher.Publish(ctx, "book.created", AuditEvent{
		Entity: "book", ID: b.ID, Action: "created",
	}); err != nil {
		uc.log.Warn("发布book.created事件失败", zap.Uint("book_id", b.ID), zap.Error(err))
	}

	return toBookResponse(b), nil
}

// =========================================
// 应用层DTO
// =========================================

// CreateBookRequest 创建图书请求
type CreateBookRequest struct {
	Title    string
	Year     *int
	ISBN     string
	Summary  string
	Image    string
	Price    *int64 // 价格(分),nil表示未定价
	AuthorID uint
}

// BookResponse 图书响应
type BookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Year      *int   `json:"year"`
	ISBN      string `json:"isbn"`
	Summary   string `json:"summary"`
	Image     string `json:"image"`
	Price     *int64 `json:"price"` // 价格(分)
	AuthorID  uint   `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuditEvent 实体生命周期审计事件
type AuditEvent struct {
	Entity string `json:"entity"`
	ID     uint   `json:"id"`
	Action string `json:"action"`
}

// toBookResponse 领域实体 → 应用层DTO
func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Year:      b.Year,
		ISBN:      b.ISBN,
		Summary:   b.Summary,
		Image:     b.Image,
		Price:     b.Price,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
