package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookadmin/internal/domain/author"
)

// fakeBookRepo 内存仓储实现（测试用）
type fakeBookRepo struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*Book), nextID: 1}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *Book) error {
	for _, exist := range r.books {
		if exist.ISBN == b.ISBN {
			return ErrISBNDuplicate
		}
	}
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *fakeBookRepo) FindAll(ctx context.Context) ([]*Book, error) {
	out := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBookRepo) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	all, _ := r.FindAll(ctx)
	return all, int64(len(all)), nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	for _, b := range r.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

// fakeAuthorExists 只实现Exists语义的作者仓储
type fakeAuthorExists struct {
	ids map[uint]bool
}

func (r *fakeAuthorExists) Create(ctx context.Context, a *author.Author) error { return nil }
func (r *fakeAuthorExists) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	if !r.ids[id] {
		return nil, author.ErrAuthorNotFound
	}
	return &author.Author{ID: id}, nil
}
func (r *fakeAuthorExists) FindAll(ctx context.Context) ([]*author.Author, error) { return nil, nil }
func (r *fakeAuthorExists) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	return nil, 0, nil
}
func (r *fakeAuthorExists) Update(ctx context.Context, a *author.Author) error { return nil }
func (r *fakeAuthorExists) Delete(ctx context.Context, id uint) error          { return nil }
func (r *fakeAuthorExists) Exists(ctx context.Context, id uint) (bool, error) {
	return r.ids[id], nil
}

func newTestService() (Service, *fakeBookRepo, *fakeAuthorExists) {
	bookRepo := newFakeBookRepo()
	authorRepo := &fakeAuthorExists{ids: map[uint]bool{1: true}}
	return NewService(bookRepo, authorRepo), bookRepo, authorRepo
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		svc, _, _ := newTestService()

		b, err := svc.CreateBook(ctx, "The Winter Garden", intPtr(2019), "9787115428028", "园艺小说", "", int64Ptr(5900), 1)
		require.NoError(t, err)
		assert.NotZero(t, b.ID)
		assert.Equal(t, "9787115428028", b.ISBN)
		assert.True(t, b.WrittenBy(1))
	})

	t.Run("书名为空返回错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.CreateBook(ctx, "", nil, "9787115428028", "", "", nil, 1)
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("ISBN格式非法返回错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		for _, isbn := range []string{"", "123", "97871154280281234"} {
			_, err := svc.CreateBook(ctx, "Title", nil, isbn, "", "", nil, 1)
			assert.ErrorIs(t, err, ErrInvalidISBN, "isbn=%q", isbn)
		}
	})

	t.Run("带分隔符的ISBN视为合法", func(t *testing.T) {
		svc, _, _ := newTestService()

		b, err := svc.CreateBook(ctx, "Title", nil, "978-7-115-42802-8", "", "", nil, 1)
		require.NoError(t, err)
		assert.NotZero(t, b.ID)
	})

	t.Run("价格为负返回错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", int64Ptr(-1), 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("引用不存在的作者返回错误", func(t *testing.T) {
		svc, bookRepo, _ := newTestService()

		_, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", nil, 9999)
		assert.ErrorIs(t, err, ErrAuthorRef)
		// 外键预检失败不应落库
		assert.Empty(t, bookRepo.books)
	})

	t.Run("重复ISBN返回错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.CreateBook(ctx, "First", nil, "9787115428028", "", "", nil, 1)
		require.NoError(t, err)

		_, err = svc.CreateBook(ctx, "Second", nil, "9787115428028", "", "", nil, 1)
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", nil, 1)
	require.NoError(t, err)

	t.Run("按ID查询", func(t *testing.T) {
		got, err := svc.GetBookByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("按ID查询不存在返回404错误", func(t *testing.T) {
		_, err := svc.GetBookByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("按ISBN查询", func(t *testing.T) {
		got, err := svc.GetBookByISBN(ctx, "9787115428028")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestReplaceBook(t *testing.T) {
	ctx := context.Background()

	t.Run("整体替换所有字段", func(t *testing.T) {
		svc, _, _ := newTestService()

		created, err := svc.CreateBook(ctx, "Old Title", intPtr(2019), "9787115428028", "旧简介", "", int64Ptr(5900), 1)
		require.NoError(t, err)

		err = svc.ReplaceBook(ctx, created.ID, "New Title", nil, "9787115428028", "", "", nil, 1)
		require.NoError(t, err)

		got, err := svc.GetBookByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)
		// PUT语义:未提供的可选字段被清空
		assert.Nil(t, got.Year)
		assert.Nil(t, got.Price)
		assert.Empty(t, got.Summary)
	})

	t.Run("替换不存在的图书返回404错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		err := svc.ReplaceBook(ctx, 9999, "Title", nil, "9787115428028", "", "", nil, 1)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("换到不存在的作者返回错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		created, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", nil, 1)
		require.NoError(t, err)

		err = svc.ReplaceBook(ctx, created.ID, "Title", nil, "9787115428028", "", "", nil, 9999)
		assert.ErrorIs(t, err, ErrAuthorRef)
	})

	t.Run("换到已存在的新作者成功", func(t *testing.T) {
		svc, _, authorRepo := newTestService()
		authorRepo.ids[2] = true

		created, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", nil, 1)
		require.NoError(t, err)

		err = svc.ReplaceBook(ctx, created.ID, "Title", nil, "9787115428028", "", "", nil, 2)
		require.NoError(t, err)

		got, err := svc.GetBookByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.WrittenBy(2))
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("删除成功", func(t *testing.T) {
		svc, _, _ := newTestService()

		created, err := svc.CreateBook(ctx, "Title", nil, "9787115428028", "", "", nil, 1)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(ctx, created.ID))

		_, err = svc.GetBookByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("删除不存在的图书返回404错误", func(t *testing.T) {
		svc, _, _ := newTestService()

		err := svc.DeleteBook(ctx, 9999)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestIsValidISBN(t *testing.T) {
	cases := []struct {
		isbn string
		want bool
	}{
		{"9787115428028", true},     // ISBN-13
		{"7115428026", true},        // ISBN-10
		{"978-7-115-42802-8", true}, // 带分隔符
		{"043942089X", true},        // ISBN-10校验位X
		{"", false},
		{"12345", false},
		{"97871154280281", false}, // 14位
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, isValidISBN(tc.isbn), "isbn=%q", tc.isbn)
	}
}
