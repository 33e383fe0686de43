package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	// AuthorID指向不存在的作者时返回ErrAuthorRef(由数据库外键约束保证)
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindAll 查询全部图书,按ID升序
	FindAll(ctx context.Context) ([]*Book, error)

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Update 更新图书信息
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// CountByAuthor 统计指定作者名下的图书数量
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配标题、ISBN)
	AuthorID uint   // 按作者过滤,0表示不过滤
}
