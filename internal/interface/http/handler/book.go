package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookadmin/internal/application/book"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/internal/interface/http/dto"
	"github.com/xiebiao/bookadmin/pkg/response"
	"github.com/xiebiao/bookadmin/pkg/validator"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	getUseCase    *appbook.GetBookUseCase
	listUseCase   *appbook.ListBooksUseCase
	updateUseCase *appbook.UpdateBookUseCase
	deleteUseCase *appbook.DeleteBookUseCase
	log           *logger.Logger
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	log *logger.Logger,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		log:           log.Named("BookHandler"),
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  不带参数返回全量列表；带page/page_size时分页，支持标题/ISBN关键词搜索、按作者过滤
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Param        author_id query int false "按作者过滤"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	h.log.Debug("查询图书列表")

	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, validator.Translate(err))
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		h.log.Error("查询图书列表失败", zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Debug("查询图书列表成功", zap.Int64("total", result.Total))
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "无效的ID"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Debug("查询图书详情", zap.Uint("id", id))

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("查询图书详情失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create 创建图书
// @Summary      创建图书
// @Description  author_id必须指向已存在的作者
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误或作者不存在"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	h.log.Info("创建图书")

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("创建图书参数错误", zap.Error(err))
		response.ValidationError(c, validator.Translate(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:    req.Title,
		Year:     req.Year,
		ISBN:     req.ISBN,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		h.log.Error("创建图书失败", zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("创建图书成功", zap.Uint("id", result.ID))
	response.Created(c, result)
}

// Update 更新图书（PUT整体替换）
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      204 "更新成功"
// @Failure      400 {object} response.Response "参数错误或ID不一致"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Info("更新图书", zap.Uint("id", id))

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("更新图书参数错误", zap.Uint("id", id), zap.Error(err))
		response.ValidationError(c, validator.Translate(err))
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		ID:       req.ID,
		Title:    req.Title,
		Year:     req.Year,
		ISBN:     req.ISBN,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		h.log.Warn("更新图书失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("更新图书成功", zap.Uint("id", id))
	response.NoContent(c)
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.log.Info("删除图书", zap.Uint("id", id))

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.log.Warn("删除图书失败", zap.Uint("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("删除图书成功", zap.Uint("id", id))
	response.NoContent(c)
}
