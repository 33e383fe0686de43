package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookadmin/internal/domain/book"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(ISBN重复、作者外键),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
// 学习要点:
// 1. ISBN唯一性由数据库UNIQUE索引保证,捕获1062转换为ErrISBNDuplicate
// 2. 作者外键由数据库约束兜底,捕获1452转换为ErrAuthorRef
//    (Service层已做预检,这里处理并发窗口内作者被删除的情况)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		if isForeignKeyRefError(err) {
			return book.ErrAuthorRef
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 查询全部图书
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	// 关键词搜索(匹配标题、ISBN)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR isbn LIKE ?", keyword, keyword)
	}

	// 按作者过滤
	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	offset := (params.Page - 1) * params.PageSize
	query = query.Order("id ASC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// Update 更新图书信息
// PUT整体替换语义:Save更新所有字段
// 更新可能改ISBN(1062)或改AuthorID(1452),同样做错误转换
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		if isForeignKeyRefError(err) {
			return book.ErrAuthorRef
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// CountByAuthor 统计指定作者名下的图书数量
func (r *bookRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).Where("author_id = ?", authorID).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计图书数量失败")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
		AuthorID: b.AuthorID,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Year:      model.Year,
		ISBN:      model.ISBN,
		Summary:   model.Summary,
		Image:     model.Image,
		Price:     model.Price,
		AuthorID:  model.AuthorID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
