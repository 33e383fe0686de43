package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookadmin/internal/domain/author"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如外键约束),转换为业务错误
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	// 回填自增ID
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// FindAll 查询全部作者
func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// List 分页查询作者列表
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := getDB(ctx, r.db).Model(&AuthorModel{})

	// 关键词搜索(匹配姓名)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	offset := (params.Page - 1) * params.PageSize
	query = query.Order("id ASC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
	}

	// 使用Save更新所有字段(PUT整体替换语义)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者
// 名下仍有图书时,books表外键RESTRICT触发MySQL错误1451,转换为ErrHasBooks
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)

	if result.Error != nil {
		if isForeignKeyRestrictError(result.Error) {
			return author.ErrHasBooks
		}
		return apperrors.Wrap(result.Error, "删除作者失败")
	}

	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// Exists 检查作者是否存在
func (r *authorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Bio:       model.Bio,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
