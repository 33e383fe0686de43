package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindAll 查询全部作者,按ID升序
	FindAll(ctx context.Context) ([]*Author, error)

	// List 分页查询作者列表
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)

	// Update 更新作者信息
	Update(ctx context.Context, a *Author) error

	// Delete 删除作者
	// 名下仍有图书时返回ErrHasBooks(由数据库外键约束保证)
	Delete(ctx context.Context, id uint) error

	// Exists 检查作者是否存在(图书创建前的外键预检)
	Exists(ctx context.Context, id uint) (bool, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配姓名)
}
