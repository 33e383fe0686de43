package author

import (
	"context"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:FirstName和LastName不能为空
	CreateAuthor(ctx context.Context, firstName, lastName, bio string) (*Author, error)

	// GetAuthorByID 根据ID获取作者详情
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// ListAuthors 分页查询作者列表
	ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error)

	// ListAllAuthors 查询全部作者(不带任何查询参数的GET走这里)
	ListAllAuthors(ctx context.Context) ([]*Author, error)

	// ReplaceAuthor 整体替换作者信息(PUT语义)
	ReplaceAuthor(ctx context.Context, id uint, firstName, lastName, bio string) error

	// DeleteAuthor 删除作者
	// 名下仍有图书时返回ErrHasBooks
	DeleteAuthor(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, firstName, lastName, bio string) (*Author, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}

	a := NewAuthor(firstName, lastName, bio)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthorByID 根据ID获取作者
func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}

// ListAllAuthors 查询全部作者
func (s *service) ListAllAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.FindAll(ctx)
}

// ReplaceAuthor 整体替换作者信息
// 先查询确认存在(不存在返回404),再整体覆盖
func (s *service) ReplaceAuthor(ctx context.Context, id uint, firstName, lastName, bio string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := a.Replace(firstName, lastName, bio); err != nil {
		return err
	}

	return s.repo.Update(ctx, a)
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	// 先确认存在:对不存在的ID返回404而不是静默成功
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
