package rest

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	tokenCookie = "token"
	tokenKey    = "token"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAuthor = "author"
)

// Claims is the payload of a CMS issued token.
type Claims struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims reads the claims of a token without verifying it. The CMS
// verifies the signature on every call made with the token.
func ParseClaims(token string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	return claims, nil
}

type NavItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

var navigation = []struct {
	item  NavItem
	roles []string // empty means every signed in user
}{
	{NavItem{Title: "Contents", Path: "/dashboard/contents"}, nil},
	{NavItem{Title: "Categories", Path: "/dashboard/categories"}, []string{RoleAdmin, RoleEditor}},
	{NavItem{Title: "Subcategories", Path: "/dashboard/subcategories"}, []string{RoleAdmin, RoleEditor}},
	{NavItem{Title: "Advertising", Path: "/dashboard/advertising"}, []string{RoleAdmin}},
	{NavItem{Title: "Subscribers", Path: "/dashboard/subscribers"}, []string{RoleAdmin, RoleEditor}},
	{NavItem{Title: "Roles", Path: "/dashboard/roles"}, []string{RoleAdmin}},
	{NavItem{Title: "Settings", Path: "/dashboard/settings"}, []string{RoleAdmin}},
}

// Navigation returns the dashboard sections visible to role.
func Navigation(role string) []NavItem {
	role = strings.ToLower(strings.TrimSpace(role))

	items := make([]NavItem, 0, len(navigation))
	for _, n := range navigation {
		if len(n.roles) == 0 || slices.Contains(n.roles, role) {
			items = append(items, n.item)
		}
	}

	return items
}

// bearerToken takes the token from the Authorization header, falling back
// to the cookie set on login.
func bearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(tokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func (h *Handler) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return h.handleError(c, errors.New("missing bearer token"), http.StatusUnauthorized, "unauthorized")
		}

		c.Set(tokenKey, token)
		return next(c)
	}
}

func token(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}
