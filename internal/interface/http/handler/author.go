package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookadmin/internal/application/author"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
	"github.com/xiebiao/bookadmin/pkg/response"
	"github.com/xiebiao/bookadmin/pkg/validator"
)

// AuthorHandler 作者HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 日志组件按参数注入（不用全局单例），便于测试
type AuthorHandler struct {
	createUseCase *appauthor.CreateAuthorUseCase
	getUseCase    *appauthor.GetAuthorUseCase
	listUseCase   *appauthor.ListAuthorsUseCase
	updateUseCase *appauthor.UpdateAuthorUseCase
	deleteUseCase *appauthor.DeleteAuthorUseCase
	log           *logger.Logger
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createUseCase *appauthor.CreateAuthorUseCase,
	getUseCase *appauthor.GetAuthorUseCase,
	listUseCase *appauthor.ListAuthorsUseCase,
	updateUseCase *appauthor.UpdateAuthorUseCase,
	deleteUseCase *appauthor.DeleteAuthorUseCase,
	log *logger.Logger,
) *AuthorHandler {
	return &AuthorHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		log:           log.Named("AuthorHandler"),
	}
}

// List 作者列表
// @Summary      作者列表
// @Description  不带参数返回全量列表；带page/page_size时分页，支持姓名关键词搜索
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	h.log.Debug("查询作者列表")

	var req dto.ListAuthorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, validator.Translate(err))
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appauthor.ListAuthorsRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		h.log.Error("查询作者列表失败", zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Debug("查询作者列表成功", zap.Int64("total", result.Total))
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "无效的ID"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Debug("查询作者详情", zap.Uint("id", id))

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("查询作者详情失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	h.log.Info("创建作者")

	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("创建作者参数错误", zap.Error(err))
		response.ValidationError(c, validator.Translate(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		h.log.Error("创建作者失败", zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("创建作者成功", zap.Uint("id", result.ID))
	response.Created(c, result)
}

// Update 更新作者（PUT整体替换）
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      204 "更新成功"
// @Failure      400 {object} response.Response "参数错误或ID不一致"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Info("更新作者", zap.Uint("id", id))

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("更新作者参数错误", zap.Uint("id", id), zap.Error(err))
		response.ValidationError(c, validator.Translate(err))
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), id, appauthor.UpdateAuthorRequest{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		h.log.Warn("更新作者失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("更新作者成功", zap.Uint("id", id))
	response.NoContent(c)
}

// Delete 删除作者
// @Summary      删除作者
// @Description  名下仍有图书的作者不可删除
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Failure      400 {object} response.Response "作者名下仍有图书"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Info("删除作者", zap.Uint("id", id))

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.log.Warn("删除作者失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("删除作者成功", zap.Uint("id", id))
	response.NoContent(c)
}

// parseIDParam 解析路径中的:id参数
// 非数字或小于1时返回400并写入响应，调用方直接return
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id < 1 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID: "+raw)
		return 0, false
	}
	return uint(id), true
}
