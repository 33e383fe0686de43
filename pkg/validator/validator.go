// Package validator 把Gin绑定阶段的校验错误翻译成结构化的字段级错误列表。
//
// 设计说明：
// 校验是Handler里显式的一步：ShouldBindJSON失败后调用Translate，
// 得到[]FieldError返回给客户端，
// 而不是把validator内部的错误字符串原样抛出去。
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`   // 字段名（JSON风格小写）
	Message string `json:"message"` // 错误描述
}

// Translate 把绑定错误翻译为字段级错误列表
// 支持两类错误：
// 1. validator.ValidationErrors：逐字段翻译tag语义
// 2. 其他错误（如JSON语法错误）：归为body字段的整体错误
func Translate(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{
			Field:   "body",
			Message: "请求体格式错误",
		}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

// messageFor 按校验tag生成可读的提示
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必填字段缺失"
	case "email":
		return "邮箱格式不正确"
	case "min":
		return fmt.Sprintf("不能小于%s", fe.Param())
	case "max":
		return fmt.Sprintf("不能大于%s", fe.Param())
	case "url":
		return "URL格式不正确"
	case "gte":
		return fmt.Sprintf("必须大于等于%s", fe.Param())
	case "lte":
		return fmt.Sprintf("必须小于等于%s", fe.Param())
	default:
		return fmt.Sprintf("不满足校验规则%q", fe.Tag())
	}
}
