package author

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookadmin/internal/domain/author"
)

// pagedAuthorService 预置数据的领域服务桩,按参数真实分页
type pagedAuthorService struct {
	authors []*author.Author
}

func newPagedAuthorService(n int) *pagedAuthorService {
	s := &pagedAuthorService{}
	for i := 1; i <= n; i++ {
		s.authors = append(s.authors, &author.Author{
			ID:        uint(i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
		})
	}
	return s
}

func (s *pagedAuthorService) CreateAuthor(ctx context.Context, firstName, lastName, bio string) (*author.Author, error) {
	return nil, nil
}

func (s *pagedAuthorService) GetAuthorByID(ctx context.Context, id uint) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (s *pagedAuthorService) ListAuthors(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	start := (params.Page - 1) * params.PageSize
	if start >= len(s.authors) {
		return nil, int64(len(s.authors)), nil
	}
	end := start + params.PageSize
	if end > len(s.authors) {
		end = len(s.authors)
	}
	return s.authors[start:end], int64(len(s.authors)), nil
}

func (s *pagedAuthorService) ListAllAuthors(ctx context.Context) ([]*author.Author, error) {
	return s.authors, nil
}

func (s *pagedAuthorService) ReplaceAuthor(ctx context.Context, id uint, firstName, lastName, bio string) error {
	return nil
}

func (s *pagedAuthorService) DeleteAuthor(ctx context.Context, id uint) error {
	return nil
}

func TestListAuthorsFullCollection(t *testing.T) {
	ctx := context.Background()
	uc := NewListAuthorsUseCase(newPagedAuthorService(25))

	t.Run("不带参数返回全量列表而非默认分页", func(t *testing.T) {
		resp, err := uc.Execute(ctx, ListAuthorsRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.List, 25)
		assert.Equal(t, int64(25), resp.Total)
	})

	t.Run("显式分页参数生效", func(t *testing.T) {
		resp, err := uc.Execute(ctx, ListAuthorsRequest{Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, resp.List, 10)
		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 2, resp.Page)
		// 第二页从第11条开始
		assert.Equal(t, uint(11), resp.List[0].ID)
	})

	t.Run("只给page时按默认pageSize分页", func(t *testing.T) {
		resp, err := uc.Execute(ctx, ListAuthorsRequest{Page: 1})
		require.NoError(t, err)
		assert.Len(t, resp.List, 20)
		assert.Equal(t, 20, resp.PageSize)
	})
}
