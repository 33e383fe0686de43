package author

import (
	"time"
)

// Author 作者实体(聚合根)
// DDD设计说明:
// 1. Author是作者聚合的根实体,图书通过AuthorID外键引用它
// 2. Bio是可选的简介字段,允许为空
// 3. 删除受外键约束保护:名下仍有图书的作者不可删除(见Repository实现)
type Author struct {
	ID        uint
	FirstName string // 名
	LastName  string // 姓
	Bio       string // 简介(可选)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(firstName, lastName, bio string) *Author {
	now := time.Now()
	return &Author{
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Replace 整体替换作者信息(领域行为)
// PUT语义:请求体中的字段全量覆盖现有值,不做逐字段合并
func (a *Author) Replace(firstName, lastName, bio string) error {
	if firstName == "" || lastName == "" {
		return ErrInvalidName
	}
	a.FirstName = firstName
	a.LastName = lastName
	a.Bio = bio
	a.UpdatedAt = time.Now()
	return nil
}

// FullName 返回作者全名
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
