package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookCRUD 图书完整生命周期：创建→查询→更新→删除
func TestBookCRUD(t *testing.T) {
	RequireServer(t)
	token := LoginAsAdmin(t)

	authorID := CreateTestAuthor(t, token, "Book", "Writer")
	defer DeleteJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, authorID), token)

	isbn := GenerateTestISBN()

	// 1. 创建
	status, resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":     "The Winter Garden",
		"year":      2019,
		"isbn":      isbn,
		"summary":   "集成测试图书",
		"price":     5900,
		"author_id": authorID,
	}, token)
	require.Equal(t, http.StatusCreated, status, "创建图书失败: %s", resp.Message)

	var created BookData
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotZero(t, created.ID)
	bookURL := fmt.Sprintf("%s/books/%d", BaseURL, created.ID)

	// 2. 查询（读操作公开）
	status, resp = GetJSON(t, bookURL, "")
	require.Equal(t, http.StatusOK, status)

	var got BookData
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, isbn, got.ISBN)
	require.NotNil(t, got.Price)
	assert.Equal(t, int64(5900), *got.Price)

	// 3. 更新（PUT整体替换，可选字段清空）
	status, _ = PutJSON(t, bookURL, map[string]interface{}{
		"id":        created.ID,
		"title":     "The Winter Garden (2nd ed.)",
		"isbn":      isbn,
		"author_id": authorID,
	}, token)
	assert.Equal(t, http.StatusNoContent, status)

	status, resp = GetJSON(t, bookURL, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "The Winter Garden (2nd ed.)", got.Title)
	assert.Nil(t, got.Year)
	assert.Nil(t, got.Price)

	// 4. 删除
	status, _ = DeleteJSON(t, bookURL, token)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = GetJSON(t, bookURL, "")
	assert.Equal(t, http.StatusNotFound, status)
}

// TestBookCreateValidations 创建图书的业务规则校验
func TestBookCreateValidations(t *testing.T) {
	RequireServer(t)
	token := LoginAsAdmin(t)

	authorID := CreateTestAuthor(t, token, "Valid", "Ation")
	defer DeleteJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, authorID), token)

	t.Run("引用不存在的作者返回400", func(t *testing.T) {
		status, _ := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":     "Orphan Book",
			"isbn":      GenerateTestISBN(),
			"author_id": 99999999,
		}, token)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("重复ISBN返回400", func(t *testing.T) {
		isbn := GenerateTestISBN()

		status, resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":     "First",
			"isbn":      isbn,
			"author_id": authorID,
		}, token)
		require.Equal(t, http.StatusCreated, status)

		var created BookData
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		defer DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID), token)

		status, _ = PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":     "Second",
			"isbn":      isbn,
			"author_id": authorID,
		}, token)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		status, _ := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "No ISBN",
		}, token)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

// TestBookList 图书列表分页查询
func TestBookList(t *testing.T) {
	RequireServer(t)

	status, resp := GetJSON(t, BaseURL+"/books?page=1&page_size=5", "")
	require.Equal(t, http.StatusOK, status)

	var list struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 5, list.PageSize)
}
