package dto

// CreateBookRequest HTTP层创建图书请求
// validator tag说明:
// - required: 必填字段
// - omitempty: 可选字段,零值时跳过后续校验
// - url: URL格式校验
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"The Winter Garden"`
	Year     *int   `json:"year" binding:"omitempty,gte=0" example:"2019"`
	ISBN     string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Summary  string `json:"summary" binding:"max=1000" example:"A quiet novel about growing things."`
	Image    string `json:"image" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Price    *int64 `json:"price" binding:"omitempty,gte=0" example:"5900"` // 价格(分),59.00元
	AuthorID uint   `json:"author_id" binding:"required,min=1" example:"1"`
}

// UpdateBookRequest HTTP层更新图书请求（PUT整体替换）
// ID可省略；携带时必须与路径ID一致，否则返回400
type UpdateBookRequest struct {
	ID       uint   `json:"id" example:"1"`
	Title    string `json:"title" binding:"required,max=200" example:"The Winter Garden"`
	Year     *int   `json:"year" binding:"omitempty,gte=0" example:"2019"`
	ISBN     string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Summary  string `json:"summary" binding:"max=1000" example:"A quiet novel about growing things."`
	Image    string `json:"image" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Price    *int64 `json:"price" binding:"omitempty,gte=0" example:"5900"`
	AuthorID uint   `json:"author_id" binding:"required,min=1" example:"1"`
}

// BookResponse HTTP图书响应
// 用于单个图书详情返回
type BookResponse struct {
	ID        uint   `json:"id" example:"1"`
	Title     string `json:"title" example:"The Winter Garden"`
	Year      *int   `json:"year" example:"2019"`
	ISBN      string `json:"isbn" example:"9787115428028"`
	Summary   string `json:"summary" example:"A quiet novel about growing things."`
	Image     string `json:"image" example:"https://example.com/cover.jpg"`
	Price     *int64 `json:"price" example:"5900"` // 价格(分)
	AuthorID  uint   `json:"author_id" example:"1"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Garden"`
	AuthorID uint   `form:"author_id" binding:"omitempty,min=1" example:"1"`
}
