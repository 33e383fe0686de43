package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookadmin/pkg/jwt"
	"github.com/xiebiao/bookadmin/pkg/response"
)

// fakeBlacklist 内存黑名单实现（测试用）
type fakeBlacklist struct {
	tokens map[string]bool
}

func (b *fakeBlacklist) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	return b.tokens[token], nil
}

func setupAuthRouter(t *testing.T, blacklist Blacklist) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	auth := NewAuthMiddleware(jwtManager, blacklist)

	r := gin.New()
	r.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		response.Success(c, gin.H{
			"user_id": GetUserID(c),
			"email":   GetEmail(c),
		})
	})
	r.DELETE("/admin-only", auth.RequireAuth(), auth.RequireRoles("Administrator", "Helpdesk1"), func(c *gin.Context) {
		response.Success(c, nil)
	})

	return r, jwtManager
}

func TestRequireAuth(t *testing.T) {
	blacklist := &fakeBlacklist{tokens: make(map[string]bool)}
	r, jwtManager := setupAuthRouter(t, blacklist)

	t.Run("缺少Authorization头返回401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token格式错误返回401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "NotBearer xyz")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("无效Token返回401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("有效Token放行并注入用户信息", func(t *testing.T) {
		pair, err := jwtManager.GenerateToken(42, "flic@felicitywinter.com", []string{"Customer"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
		assert.Contains(t, w.Body.String(), "flic@felicitywinter.com")
	})

	t.Run("黑名单中的Token返回401", func(t *testing.T) {
		pair, err := jwtManager.GenerateToken(42, "flic@felicitywinter.com", []string{"Customer"})
		require.NoError(t, err)
		blacklist.tokens[pair.AccessToken] = true

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	blacklist := &fakeBlacklist{tokens: make(map[string]bool)}
	r, jwtManager := setupAuthRouter(t, blacklist)

	t.Run("角色不满足返回403", func(t *testing.T) {
		pair, err := jwtManager.GenerateToken(7, "customer@example.com", []string{"Customer"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("拥有任一所需角色即放行", func(t *testing.T) {
		pair, err := jwtManager.GenerateToken(8, "helpdesk@example.com", []string{"Customer", "Helpdesk1"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("未登录直接被RequireAuth拦截", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
