package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isForeignKeyRefError 判断是否为"引用的父记录不存在"错误
// MySQL错误码:
// - 1452: Cannot add or update a child row: a foreign key constraint fails
// 场景:创建/更新图书时author_id指向不存在的作者
func isForeignKeyRefError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return strings.Contains(err.Error(), "add or update a child row")
	}
	return strings.Contains(err.Error(), "Error 1452")
}

// isForeignKeyRestrictError 判断是否为"父记录仍被子记录引用"错误
// MySQL错误码:
// - 1451: Cannot delete or update a parent row: a foreign key constraint fails
// 场景:删除名下仍有图书的作者
func isForeignKeyRestrictError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return strings.Contains(err.Error(), "delete or update a parent row")
	}
	return strings.Contains(err.Error(), "Error 1451")
}

// getDB 从context获取事务DB,如果没有则使用fallback
// 事务传递机制:TxManager把事务DB注入context,各Repository统一用此函数取DB
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
