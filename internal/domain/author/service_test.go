package author

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthorRepo 内存仓储实现（测试用）
type fakeAuthorRepo struct {
	authors map[uint]*Author
	nextID  uint

	// books 记录每个作者名下的图书数,模拟外键约束
	books map[uint]int
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors: make(map[uint]*Author),
		nextID:  1,
		books:   make(map[uint]int),
	}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *Author) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAuthorRepo) FindAll(ctx context.Context) ([]*Author, error) {
	out := make([]*Author, 0, len(r.authors))
	for _, a := range r.authors {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAuthorRepo) List(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	all, _ := r.FindAll(ctx)
	return all, int64(len(all)), nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.authors[id]; !ok {
		return ErrAuthorNotFound
	}
	if r.books[id] > 0 {
		return ErrHasBooks
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeAuthorRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		svc := NewService(newFakeAuthorRepo())

		a, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "写园艺小说的作者")
		require.NoError(t, err)
		assert.NotZero(t, a.ID)
		assert.Equal(t, "Felicity", a.FirstName)
		assert.Equal(t, "Winter", a.LastName)
		assert.Equal(t, "Felicity Winter", a.FullName())
	})

	t.Run("姓名为空返回错误", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewService(repo)

		_, err := svc.CreateAuthor(ctx, "", "Winter", "")
		assert.ErrorIs(t, err, ErrInvalidName)

		_, err = svc.CreateAuthor(ctx, "Felicity", "", "")
		assert.ErrorIs(t, err, ErrInvalidName)

		// 校验失败不应落库
		assert.Empty(t, repo.authors)
	})
}

func TestGetAuthorByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	svc := NewService(repo)

	created, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "bio")
	require.NoError(t, err)

	t.Run("查询已存在的作者", func(t *testing.T) {
		got, err := svc.GetAuthorByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Felicity", got.FirstName)
	})

	t.Run("查询不存在的作者返回404错误", func(t *testing.T) {
		_, err := svc.GetAuthorByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})
}

func TestReplaceAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("整体替换所有字段", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewService(repo)

		created, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "旧简介")
		require.NoError(t, err)

		err = svc.ReplaceAuthor(ctx, created.ID, "Felicity", "Sommers", "")
		require.NoError(t, err)

		got, err := svc.GetAuthorByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sommers", got.LastName)
		// PUT语义:未提供的可选字段被清空,而不是保留旧值
		assert.Empty(t, got.Bio)
	})

	t.Run("替换不存在的作者返回404错误", func(t *testing.T) {
		svc := NewService(newFakeAuthorRepo())

		err := svc.ReplaceAuthor(ctx, 9999, "A", "B", "")
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("替换为非法姓名返回错误", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewService(repo)

		created, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "bio")
		require.NoError(t, err)

		err = svc.ReplaceAuthor(ctx, created.ID, "", "Winter", "")
		assert.ErrorIs(t, err, ErrInvalidName)

		// 原数据未被破坏
		got, err := svc.GetAuthorByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Felicity", got.FirstName)
	})
}

func TestDeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("删除成功", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewService(repo)

		created, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAuthor(ctx, created.ID))

		_, err = svc.GetAuthorByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("删除不存在的作者返回404错误", func(t *testing.T) {
		svc := NewService(newFakeAuthorRepo())

		err := svc.DeleteAuthor(ctx, 9999)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("名下仍有图书的作者不可删除", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewService(repo)

		created, err := svc.CreateAuthor(ctx, "Felicity", "Winter", "")
		require.NoError(t, err)
		repo.books[created.ID] = 2

		err = svc.DeleteAuthor(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrHasBooks))

		// 删除失败,作者仍然存在
		_, err = svc.GetAuthorByID(ctx, created.ID)
		assert.NoError(t, err)
	})
}
