package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appuser "github.com/xiebiao/bookadmin/internal/application/user"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/internal/interface/http/dto"
	"github.com/xiebiao/bookadmin/internal/interface/http/middleware"
	"github.com/xiebiao/bookadmin/pkg/response"
	"github.com/xiebiao/bookadmin/pkg/validator"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
	logoutUseCase   *appuser.LogoutUseCase
	log             *logger.Logger
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	log *logger.Logger,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		log:             log.Named("UserHandler"),
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号，自动分配Customer角色
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误或邮箱已存在"
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定并验证参数
	// 学习要点：Gin的ShouldBindJSON会自动校验binding tag
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("注册参数错误", zap.Error(err))
		response.ValidationError(c, validator.Translate(err))
		return
	}

	// 2. 调用应用层用例
	// 学习要点：Handler不直接调用domain层，而是通过application层
	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		// 业务错误（如邮箱已存在、密码强度不足）
		h.log.Warn("注册失败", zap.String("email", req.Email), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("注册成功", zap.Uint("user_id", result.ID))

	// 3. 返回成功响应
	// 将application层的DTO转换为HTTP层的DTO
	response.Created(c, &dto.UserResponse{
		ID:        result.ID,
		Email:     result.Email,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Roles:     result.Roles,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回携带角色列表的JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appuser.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.Translate(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// 登录失败（邮箱不存在或密码错误）
		h.log.Warn("登录失败", zap.String("email", req.Email), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("登录成功", zap.Uint("user_id", result.User.ID))
	response.Success(c, result)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	token := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		h.log.Error("登出失败", zap.Uint("user_id", userID), zap.Error(err))
		response.Error(c, err)
		return
	}

	h.log.Info("登出成功", zap.Uint("user_id", userID))
	response.Success(c, nil)
}
