package author

import (
	"context"

	"github.com/xiebiao/bookadmin/internal/domain/author"
)

// GetAuthorUseCase 作者详情查询用例
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建详情查询用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// Execute 执行查询，不存在返回ErrAuthorNotFound
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

// ListAuthorsUseCase 作者列表查询用例
// 支持分页与关键词搜索
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建列表查询用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// ListAuthorsRequest 列表查询请求DTO
type ListAuthorsRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配姓名)
}

// ListAuthorsResponse 列表查询响应DTO
type ListAuthorsResponse struct {
	List     []AuthorResponse `json:"list"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Execute 执行列表查询
// 学习要点:
// 1. 不带任何查询参数时返回全量列表,集合不会被默认分页悄悄截断
// 2. 带参数时分页,默认值处理(page默认1, pageSize默认20, 最大100)
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, req ListAuthorsRequest) (*ListAuthorsResponse, error) {
	// 1. 完全没给查询参数 → 全量列表
	if req.Page == 0 && req.PageSize == 0 && req.Keyword == "" {
		authors, err := uc.authorService.ListAllAuthors(ctx)
		if err != nil {
			return nil, err
		}
		return &ListAuthorsResponse{
			List:     toAuthorResponses(authors),
			Total:    int64(len(authors)),
			Page:     1,
			PageSize: len(authors),
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
	authors, total, err := uc.authorService.ListAuthors(ctx, author.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return nil, err
	}

	return &ListAuthorsResponse{
		List:     toAuthorResponses(authors),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// toAuthorResponses 实体列表 → DTO列表
func toAuthorResponses(authors []*author.Author) []AuthorResponse {
	list := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = *toAuthorResponse(a)
	}
	return list
}
