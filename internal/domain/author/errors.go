package author

import (
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrInvalidName 姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")

	// ErrHasBooks 作者名下仍有图书(外键约束1451)
	ErrHasBooks = apperrors.New(apperrors.ErrCodeAuthorHasBooks, "作者名下仍有图书，无法删除")
)
