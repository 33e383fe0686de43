package dto

// CreateAuthorRequest HTTP层创建作者请求
// validator tag说明:
// - required: 必填字段
// - max: 最大长度限制
type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Felicity"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Winter"`
	Bio       string `json:"bio" binding:"max=500" example:"New Zealand based author."`
}

// UpdateAuthorRequest HTTP层更新作者请求（PUT整体替换）
// ID可省略；携带时必须与路径ID一致，否则返回400
type UpdateAuthorRequest struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" binding:"required,max=100" example:"Felicity"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Winter"`
	Bio       string `json:"bio" binding:"max=500" example:"New Zealand based author."`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Felicity"`
	LastName  string `json:"last_name" example:"Winter"`
	Bio       string `json:"bio" example:"New Zealand based author."`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListAuthorsRequest HTTP作者列表请求
type ListAuthorsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Winter"`
}
