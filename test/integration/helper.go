// Package integration 端到端集成测试
//
// 运行前提：服务已在本地启动（依赖MySQL与Redis）：
//
//	go run ./cmd/api
//	go test ./test/integration/...
//
// 服务未启动时整个包的测试会被跳过，不会失败。
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// 种子数据中的管理员账号（见internal/application/seed）
const (
	adminEmail    = "admin@bookstore.co.nz"
	adminPassword = "Fr33d0m!"
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// BookData 图书响应数据
type BookData struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Year     *int   `json:"year"`
	ISBN     string `json:"isbn"`
	Summary  string `json:"summary"`
	Price    *int64 `json:"price"`
	AuthorID uint   `json:"author_id"`
}

// RequireServer 检查本地服务是否已启动，未启动时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", "localhost:8080", time.Second)
	if err != nil {
		t.Skip("本地服务未启动，跳过集成测试")
	}
	conn.Close()
}

// doRequest 发送请求并解析统一响应
// 返回HTTP状态码与响应体；204等无响应体的情况返回空Response
func doRequest(t *testing.T, method, url string, data interface{}, token string) (int, *Response) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	result := &Response{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, result), "解析JSON响应失败: %s", string(raw))
	}

	return resp.StatusCode, result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) (int, *Response) {
	return doRequest(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) (int, *Response) {
	return doRequest(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) (int, *Response) {
	return doRequest(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) (int, *Response) {
	return doRequest(t, http.MethodDelete, url, nil, token)
}

// LoginAsAdmin 用种子管理员账号登录并返回Token
func LoginAsAdmin(t *testing.T) string {
	t.Helper()

	status, resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, "")
	require.Equal(t, http.StatusOK, status, "管理员登录失败: %s", resp.Message)

	var loginData LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &loginData), "解析登录响应失败")
	require.NotEmpty(t, loginData.AccessToken)

	return loginData.AccessToken
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成唯一的13位测试ISBN
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// CreateTestAuthor 创建测试作者并返回ID
func CreateTestAuthor(t *testing.T, token, firstName, lastName string) uint {
	t.Helper()

	status, resp := PostJSON(t, BaseURL+"/authors", map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"bio":        "集成测试作者",
	}, token)
	require.Equal(t, http.StatusCreated, status, "创建作者失败: %s", resp.Message)

	var data AuthorData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotZero(t, data.ID)
	return data.ID
}
