package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,通过AuthorID外键引用作者聚合
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题),可选字段用指针表示"未填写"
// 3. ISBN作为业务唯一标识(数据库层保证唯一性)
// 4. Year/Summary/Image/Price均为可选字段
type Book struct {
	ID        uint
	Title     string // 书名
	Year      *int   // 出版年份(可选)
	ISBN      string // ISBN号(国际标准书号)
	Summary   string // 内容简介(可选)
	Image     string // 封面图片URL(可选)
	Price     *int64 // 价格(单位:分,1元=100分,可选)
	AuthorID  uint   // 作者ID(外键,关联Author表)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数说明:
// - title: 书名
// - year: 出版年份,nil表示未填写
// - isbn: ISBN号(需调用方先验证格式)
// - summary: 内容简介
// - image: 封面图URL
// - price: 价格(分),nil表示未定价
// - authorID: 作者ID
func NewBook(title string, year *int, isbn, summary, image string, price *int64, authorID uint) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Year:      year,
		ISBN:      isbn,
		Summary:   summary,
		Image:     image,
		Price:     price,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Replace 整体替换图书信息(领域行为)
// PUT语义:请求体中的字段全量覆盖现有值,可选字段传nil即清空
func (b *Book) Replace(title string, year *int, isbn, summary, image string, price *int64, authorID uint) error {
	if title == "" {
		return ErrInvalidTitle
	}
	if !isValidISBN(isbn) {
		return ErrInvalidISBN
	}
	if price != nil && *price < 0 {
		return ErrInvalidPrice
	}
	b.Title = title
	b.Year = year
	b.ISBN = isbn
	b.Summary = summary
	b.Image = image
	b.Price = price
	b.AuthorID = authorID
	b.UpdatedAt = time.Now()
	return nil
}

// WrittenBy 检查图书是否属于指定作者
func (b *Book) WrittenBy(authorID uint) bool {
	return b.AuthorID == authorID
}
