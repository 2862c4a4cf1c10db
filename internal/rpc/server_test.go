package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T) *zenrpc.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /contents/3/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"data": []cms.Content{
				{ID: 1, Heading: "<i>one</i>", CategoryID: 3, SubcategoryID: 7},
				{ID: 2, Heading: "two", CategoryID: 3, SubcategoryID: 7},
			},
			"meta": map[string]int{"current_page": 1, "last_page": 3},
		})
	})
	mux.HandleFunc("GET /show-tags/{tag}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"data":    []cms.Content{{ID: 9, Tags: []string{r.PathValue("tag")}}},
			"meta":    map[string]int{"page": 2, "total_pages": 2},
		})
	})
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"data": []cms.Category{
				{ID: 3, Name: "Sports", Subcategories: []cms.Subcategory{{ID: 7, CategoryID: 3, Name: "Football"}}},
			},
		})
	})
	mux.HandleFunc("GET /advertising/horizontal", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "data": map[string]string{"code": "<b>buy</b><script>x()</script>"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := blog.NewManager(cms.NewClient(srv.URL), blog.NewResolver(srv.URL), "https://example.com", log)

	return New(log, manager)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, s *zenrpc.Server, method, params string) rpcResponse {
	t.Helper()

	body := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, params)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestContentService_List(t *testing.T) {
	s := newTestServer(t)

	t.Run("Category", func(t *testing.T) {
		resp := call(t, s, "content.list", `{"filter":{"kind":"category","categoryId":"3","subcategoryId":"7"}}`)
		require.Nil(t, resp.Error)

		var page PostsPage
		require.NoError(t, json.Unmarshal(resp.Result, &page))
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 3, page.LastPage)
		assert.True(t, page.HasMore)
		require.Len(t, page.Posts, 2)
		assert.Equal(t, "<i>one</i>", page.Posts[0].Heading)
		assert.Equal(t, "https://example.com/blogs/3/7/1", page.Posts[0].ShareURL)
	})

	t.Run("PositionalTag", func(t *testing.T) {
		resp := call(t, s, "content.list", `[{"kind":"tag","tag":"music","page":2}]`)
		require.Nil(t, resp.Error)

		var page PostsPage
		require.NoError(t, json.Unmarshal(resp.Result, &page))
		assert.False(t, page.HasMore)
		assert.Equal(t, []string{"music"}, page.Posts[0].Tags)
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		for _, params := range []string{
			`{"filter":{"kind":"category","categoryId":"3"}}`,
			`{"filter":{"kind":"tag"}}`,
			`{"filter":{"kind":"weather"}}`,
		} {
			resp := call(t, s, "content.list", params)
			require.NotNil(t, resp.Error, params)
			assert.Equal(t, 400, resp.Error.Code, params)
		}
	})

	t.Run("UnknownListing", func(t *testing.T) {
		resp := call(t, s, "content.list", `{"filter":{"kind":"shows"}}`)
		require.NotNil(t, resp.Error)
		assert.Equal(t, 404, resp.Error.Code)
	})
}

func TestContentService_Categories(t *testing.T) {
	s := newTestServer(t)

	resp := call(t, s, "content.categories", `{}`)
	require.Nil(t, resp.Error)

	var categories []Category
	require.NoError(t, json.Unmarshal(resp.Result, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Sports", categories[0].Name)
	assert.Equal(t, []Subcategory{{SubcategoryID: 7, Name: "Football"}}, categories[0].Subcategories)
}

func TestContentService_Advertising(t *testing.T) {
	s := newTestServer(t)

	resp := call(t, s, "content.advertising", `{}`)
	require.Nil(t, resp.Error)

	var ads Ads
	require.NoError(t, json.Unmarshal(resp.Result, &ads))
	assert.Equal(t, "<b>buy</b>", ads.Horizontal.Code)
	assert.Equal(t, Ad{}, ads.Vertical)
}
