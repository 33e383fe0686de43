package book

import (
	"context"

	"github.com/xiebiao/bookadmin/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 执行查询，不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分页、关键词搜索、按作者过滤
// 2. 列表查询不返回summary字段(减少数据传输量)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配标题、ISBN)
	AuthorID uint   // 按作者过滤,0表示不过滤
}

// BookListItem 列表项DTO(不含summary)
type BookListItem struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Year      *int   `json:"year"`
	ISBN      string `json:"isbn"`
	Image     string `json:"image"`
	Price     *int64 `json:"price"` // 价格(分)
	AuthorID  uint   `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List     []BookListItem `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Execute 执行列表查询用例
// 学习要点:
// 1. 不带任何查询参数时返回全量列表,集合不会被默认分页悄悄截断
// 2. 带参数时分页,默认值处理(page默认1, pageSize默认20, 最大100)
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 完全没给查询参数 → 全量列表
	if req.Page == 0 && req.PageSize == 0 && req.Keyword == "" && req.AuthorID == 0 {
		books, err := uc.bookService.ListAllBooks(ctx)
		if err != nil {
			return nil, err
		}
		return &ListBooksResponse{
			List:     toBookListItems(books),
			Total:    int64(len(books)),
			Page:     1,
			PageSize: len(books),
		}, nil
	}

	// 2. 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	// 3. 调用领域服务查询
	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:     toBookListItems(books),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// toBookListItems 实体列表 → 列表项DTO
func toBookListItems(books []*book.Book) []BookListItem {
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			ID:        b.ID,
			Title:     b.Title,
			Year:      b.Year,
			ISBN:      b.ISBN,
			Image:     b.Image,
			Price:     b.Price,
			AuthorID:  b.AuthorID,
			CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return list
}
