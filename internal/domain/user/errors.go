package user

import (
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-26位，包含字母和数字）")

	// ErrRoleNotFound 角色不存在
	ErrRoleNotFound = apperrors.New(apperrors.ErrCodeRoleNotFound, "角色不存在")
)
