package book

import (
	"context"
	"errors"
	"regexp"

	"github.com/xiebiao/bookadmin/internal/domain/author"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨聚合的业务逻辑(图书创建前校验作者存在)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - ISBN不能重复
	// - AuthorID必须指向已存在的作者,否则返回ErrAuthorRef
	// - 价格如果填写必须>=0
	CreateBook(ctx context.Context, title string, year *int, isbn, summary, image string, price *int64, authorID uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListAllBooks 查询全部图书(不带任何查询参数的GET走这里)
	ListAllBooks(ctx context.Context) ([]*Book, error)

	// ReplaceBook 整体替换图书信息(PUT语义)
	ReplaceBook(ctx context.Context, id uint, title string, year *int, isbn, summary, image string, price *int64, authorID uint) error

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo       Repository
	authorRepo author.Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository, authorRepo author.Repository) Service {
	return &service{repo: repo, authorRepo: authorRepo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title string, year *int, isbn, summary, image string, price *int64, authorID uint) (*Book, error) {
	// 1. 基本字段校验
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	if price != nil && *price < 0 {
		return nil, ErrInvalidPrice
	}

	// 2. 作者外键预检(数据库外键约束兜底,这里提前给出友好错误)
	ok, err := s.authorRepo.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorRef
	}

	// 3. 检查ISBN是否已存在
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 4. 创建并持久化
	b := NewBook(title, year, isbn, summary, image, price, authorID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// ListAllBooks 查询全部图书
func (s *service) ListAllBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// ReplaceBook 整体替换图书信息
// 先查询确认存在(不存在返回404),再整体覆盖
func (s *service) ReplaceBook(ctx context.Context, id uint, title string, year *int, isbn, summary, image string, price *int64, authorID uint) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// 换了作者时重新做外键预检
	if b.AuthorID != authorID {
		ok, err := s.authorRepo.Exists(ctx, authorID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAuthorRef
		}
	}

	if err := b.Replace(title, year, isbn, summary, image, price, authorID); err != nil {
		return err
	}

	return s.repo.Update(ctx, b)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	// 先确认存在:对不存在的ID返回404而不是静默成功
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// isValidISBN 校验ISBN格式
// 支持:
// - ISBN-10: 10位数字
// - ISBN-13: 13位数字,如9787115428028
// 简化实现:去除分隔符后只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	// 去除可能的分隔符(如978-7-115-42802-8 → 9787115428028)
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
