package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookadmin/pkg/response"
)

// HomeHandler 健康检查处理器
type HomeHandler struct{}

// NewHomeHandler 创建健康检查处理器
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Ping 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /ping [get]
func (h *HomeHandler) Ping(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
