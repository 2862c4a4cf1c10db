package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bearer = "Bearer opaque"

func TestDashboard_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/dashboard/api/contents", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/dashboard/api/contents", "", echo.HeaderAuthorization, bearer)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/dashboard/api/contents", "", "Cookie", "token=opaque")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboard_Login(t *testing.T) {
	s := newTestServer(t)

	t.Run("InvalidForm", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/dashboard/api/login", `{"email":"nope","password":""}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "must be a valid email", resp.Fields["email"])
		assert.Equal(t, "is required", resp.Fields["password"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/dashboard/api/login", `{"email":"jane@example.com","password":"wrong12"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/dashboard/api/login", `{"email":"jane@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "opaque", resp.Token)
		assert.Equal(t, Navigation(RoleEditor), resp.Navigation)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, tokenCookie, cookies[0].Name)
		assert.Equal(t, "opaque", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})
}

func TestDashboard_Nav(t *testing.T) {
	s := newTestServer(t)

	t.Run("FromClaims", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: RoleAdmin}).SignedString([]byte("key"))
		require.NoError(t, err)

		rec := s.do(http.MethodGet, "/dashboard/api/nav", "", echo.HeaderAuthorization, "Bearer "+signed)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []NavItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Equal(t, Navigation(RoleAdmin), items)
	})

	t.Run("FromProfile", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/dashboard/api/nav", "", echo.HeaderAuthorization, bearer)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []NavItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Equal(t, Navigation(RoleAuthor), items)
	})

	t.Run("RejectedToken", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/dashboard/api/nav", "", echo.HeaderAuthorization, "Bearer other")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDashboard_ChangeStatus(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/dashboard/api/contents", "", echo.HeaderAuthorization, bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	var list DashboardContents
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Posts, 2)
	assert.Equal(t, 1, list.LastPage)
	assert.Contains(t, list.Statuses, "needs-revision")

	t.Run("Applied", func(t *testing.T) {
		rec := s.do(http.MethodPatch, "/dashboard/api/contents/1/status", `{"status":"published"}`, echo.HeaderAuthorization, bearer)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"status":"published"}`, rec.Body.String())
	})

	t.Run("RolledBack", func(t *testing.T) {
		rec := s.do(http.MethodPatch, "/dashboard/api/contents/2/status", `{"status":"archived"}`, echo.HeaderAuthorization, bearer)
		require.Equal(t, http.StatusBadGateway, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "published", resp.Status)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		rec := s.do(http.MethodPatch, "/dashboard/api/contents/1/status", `{"status":"deleted"}`, echo.HeaderAuthorization, bearer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboard_Delete(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodDelete, "/dashboard/api/categories/4", "", echo.HeaderAuthorization, bearer)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/dashboard/api/categories/x", "", echo.HeaderAuthorization, bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard_UpdateAdvertisingPlacement(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/dashboard/api/advertising/diagonal", `{"code":"<b>ad</b>"}`, echo.HeaderAuthorization, bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
