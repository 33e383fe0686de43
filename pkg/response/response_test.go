package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"成功", 0, http.StatusOK},
		{"未登录", apperrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Token过期", apperrors.ErrCodeTokenExpired, http.StatusUnauthorized},
		{"凭证错误映射到401", apperrors.ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"无权限映射到403", apperrors.ErrCodeForbidden, http.StatusForbidden},
		{"资源不存在", apperrors.ErrCodeAuthorNotFound, http.StatusNotFound},
		{"参数错误", apperrors.ErrCodeInvalidParams, http.StatusBadRequest},
		{"ID不一致", apperrors.ErrCodeIDMismatch, http.StatusBadRequest},
		{"外键冲突", apperrors.ErrCodeAuthorHasBooks, http.StatusBadRequest},
		{"内部错误", apperrors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.code))
		})
	}
}

func TestErrorWritesBusinessCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":40403`)
	assert.Contains(t, w.Body.String(), "图书不存在")
}

func TestErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// 包装的底层错误不应出现在响应体中
	Error(c, apperrors.Wrap(assert.AnError, "数据库操作失败"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestNewPageData(t *testing.T) {
	pd := NewPageData([]string{"a", "b"}, 21, 1, 10)
	assert.Equal(t, 3, pd.TotalPages)

	pd = NewPageData(nil, 20, 1, 10)
	assert.Equal(t, 2, pd.TotalPages)

	pd = NewPageData(nil, 0, 1, 10)
	assert.Equal(t, 0, pd.TotalPages)

	// 全量列表为空时pageSize为0,不能除零
	pd = NewPageData(nil, 0, 1, 0)
	assert.Equal(t, 0, pd.TotalPages)
}
