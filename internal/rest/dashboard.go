package rest

import (
	"context"
	"net/http"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/labstack/echo/v4"
)

// Login handles POST /dashboard/api/login
// @Summary Sign in to the dashboard
// @Description Returns the CMS token and the navigation for the user's role. The token is also set as a cookie.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param form body cms.LoginForm true "Credentials"
// @Success 200 {object} rest.SessionResponse
// @Failure 400,401,502 {object} map[string]string
// @Router /dashboard/api/login [post]
func (h *Handler) Login(c echo.Context) error {
	var form cms.LoginForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	session, err := h.manager.Login(c.Request().Context(), form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     tokenCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, SessionResponse{
		Token:      session.Token,
		User:       session.User,
		Navigation: Navigation(h.role(session.Token, session.User)),
	})
}

// Logout handles POST /dashboard/api/logout
// @Summary Sign out
// @Tags dashboard
// @Success 204
// @Router /dashboard/api/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.manager.Logout(c.Request().Context(), token(c)); err != nil {
		h.log.Warn("cms logout failed", "error", err)
	}

	c.SetCookie(&http.Cookie{Name: tokenCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	return c.NoContent(http.StatusNoContent)
}

// Nav handles GET /dashboard/api/nav
// @Summary Dashboard navigation for the signed in user
// @Tags dashboard
// @Produce json
// @Success 200 {array} rest.NavItem
// @Failure 401,502 {object} map[string]string
// @Router /dashboard/api/nav [get]
func (h *Handler) Nav(c echo.Context) error {
	t := token(c)
	if claims, err := ParseClaims(t); err == nil && claims.Role != "" {
		return c.JSON(http.StatusOK, Navigation(claims.Role))
	}

	user, err := h.manager.Me(c.Request().Context(), t)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, Navigation(user.Role))
}

// role prefers the role claimed by the token over the one in the login
// response.
func (h *Handler) role(token string, user cms.User) string {
	claims, err := ParseClaims(token)
	if err != nil {
		h.log.Debug("token carries no readable claims", "error", err)
		return user.Role
	}
	if claims.Role == "" {
		return user.Role
	}

	return claims.Role
}

// DashboardContents handles GET /dashboard/api/contents
// @Summary List contents of every status
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.DashboardContents
// @Failure 401,502 {object} map[string]string
// @Router /dashboard/api/contents [get]
func (h *Handler) DashboardContents(c echo.Context) error {
	posts, meta, err := h.manager.DashboardContents(c.Request().Context(), token(c), pageParam(c))
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, DashboardContents{
		Posts:    h.newPosts(posts),
		Page:     meta.Page(),
		LastPage: meta.LastPage(),
		Statuses: blog.Map(blog.Statuses, func(s blog.Status) string { return string(s) }),
	})
}

// CreateContent handles POST /dashboard/api/contents
// @Summary Create a post
// @Tags dashboard
// @Accept json
// @Produce json
// @Param form body cms.ContentForm true "Post"
// @Success 201 {object} rest.Post
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/contents [post]
func (h *Handler) CreateContent(c echo.Context) error {
	var form cms.ContentForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	post, err := h.manager.CreateContent(c.Request().Context(), token(c), form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusCreated, NewPost(post, h.manager.Share(post)))
}

// UpdateContent handles PUT /dashboard/api/contents/:id
// @Summary Update a post
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param form body cms.ContentForm true "Post"
// @Success 200 {object} rest.Post
// @Failure 400,401,404,422,502 {object} map[string]string
// @Router /dashboard/api/contents/{id} [put]
func (h *Handler) UpdateContent(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form cms.ContentForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	post, err := h.manager.UpdateContent(c.Request().Context(), token(c), id, form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(post, h.manager.Share(post)))
}

// DeleteContent handles DELETE /dashboard/api/contents/:id
// @Summary Delete a post
// @Tags dashboard
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400,401,404,502 {object} map[string]string
// @Router /dashboard/api/contents/{id} [delete]
func (h *Handler) DeleteContent(c echo.Context) error {
	return h.deleteByID(c, h.manager.DeleteContent)
}

// ChangeStatus handles PATCH /dashboard/api/contents/:id/status
// @Summary Change the status of a post
// @Description The new status is shown at once. When the CMS rejects it the previous status is restored and returned with the error.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param form body cms.StatusForm true "Status"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,401 {object} map[string]string
// @Failure 502 {object} rest.StatusResponse
// @Router /dashboard/api/contents/{id}/status [patch]
func (h *Handler) ChangeStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form cms.StatusForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	status, err := h.manager.ChangeStatus(c.Request().Context(), token(c), id, blog.Status(form.Status))
	if cms.IsUnauthorized(err) {
		return h.handleCMSError(c, err)
	} else if err != nil {
		return c.JSON(http.StatusBadGateway, StatusResponse{
			ID:     id,
			Status: string(status),
			Error:  "failed to update status",
		})
	}

	return c.JSON(http.StatusOK, StatusResponse{ID: id, Status: string(status)})
}

// CreateCategory handles POST /dashboard/api/categories
// @Summary Create a category
// @Tags dashboard
// @Accept json
// @Produce json
// @Param form body cms.CategoryForm true "Category"
// @Success 201 {object} cms.Category
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var form cms.CategoryForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	category, err := h.manager.CreateCategory(c.Request().Context(), token(c), form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /dashboard/api/categories/:id
// @Summary Rename a category
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param form body cms.CategoryForm true "Category"
// @Success 200 {object} cms.Category
// @Failure 400,401,404,422,502 {object} map[string]string
// @Router /dashboard/api/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form cms.CategoryForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	category, err := h.manager.UpdateCategory(c.Request().Context(), token(c), id, form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /dashboard/api/categories/:id
// @Summary Delete a category
// @Tags dashboard
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,401,404,502 {object} map[string]string
// @Router /dashboard/api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	return h.deleteByID(c, h.manager.DeleteCategory)
}

// Subcategories handles GET /dashboard/api/categories/:id/subcategories
// @Summary List subcategories of a category
// @Tags dashboard
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} cms.Subcategory
// @Failure 400,401,502 {object} map[string]string
// @Router /dashboard/api/categories/{id}/subcategories [get]
func (h *Handler) Subcategories(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	subcategories, err := h.manager.Subcategories(c.Request().Context(), id)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, subcategories)
}

// CreateSubcategory handles POST /dashboard/api/subcategories
// @Summary Create a subcategory
// @Tags dashboard
// @Accept json
// @Produce json
// @Param form body cms.SubcategoryForm true "Subcategory"
// @Success 201 {object} cms.Subcategory
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/subcategories [post]
func (h *Handler) CreateSubcategory(c echo.Context) error {
	var form cms.SubcategoryForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	subcategory, err := h.manager.CreateSubcategory(c.Request().Context(), token(c), form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusCreated, subcategory)
}

// UpdateSubcategory handles PUT /dashboard/api/subcategories/:id
// @Summary Update a subcategory
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path int true "Subcategory ID"
// @Param form body cms.SubcategoryForm true "Subcategory"
// @Success 200 {object} cms.Subcategory
// @Failure 400,401,404,422,502 {object} map[string]string
// @Router /dashboard/api/subcategories/{id} [put]
func (h *Handler) UpdateSubcategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var form cms.SubcategoryForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	subcategory, err := h.manager.UpdateSubcategory(c.Request().Context(), token(c), id, form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, subcategory)
}

// DeleteSubcategory handles DELETE /dashboard/api/subcategories/:id
// @Summary Delete a subcategory
// @Tags dashboard
// @Param id path int true "Subcategory ID"
// @Success 204
// @Failure 400,401,404,502 {object} map[string]string
// @Router /dashboard/api/subcategories/{id} [delete]
func (h *Handler) DeleteSubcategory(c echo.Context) error {
	return h.deleteByID(c, h.manager.DeleteSubcategory)
}

// UpdateAdvertising handles PUT /dashboard/api/advertising/:placement
// @Summary Replace an advertising slot
// @Tags dashboard
// @Accept json
// @Produce json
// @Param placement path string true "horizontal or vertical"
// @Param form body cms.AdForm true "Advertising"
// @Success 200 {object} rest.Ad
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/advertising/{placement} [put]
func (h *Handler) UpdateAdvertising(c echo.Context) error {
	placement := c.Param("placement")
	if placement != blog.PlacementHorizontal && placement != blog.PlacementVertical {
		return h.handleError(c, nil, http.StatusBadRequest, "unknown placement")
	}

	var form cms.AdForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	ad, err := h.manager.UpdateAd(c.Request().Context(), token(c), placement, form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, NewAd(ad))
}

// Roles handles GET /dashboard/api/roles
// @Summary List roles
// @Tags dashboard
// @Produce json
// @Success 200 {array} cms.Role
// @Failure 401,502 {object} map[string]string
// @Router /dashboard/api/roles [get]
func (h *Handler) Roles(c echo.Context) error {
	roles, err := h.manager.Roles(c.Request().Context(), token(c))
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /dashboard/api/roles
// @Summary Create a role
// @Tags dashboard
// @Accept json
// @Produce json
// @Param form body cms.RoleForm true "Role"
// @Success 201 {object} cms.Role
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/roles [post]
func (h *Handler) CreateRole(c echo.Context) error {
	var form cms.RoleForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	role, err := h.manager.CreateRole(c.Request().Context(), token(c), form)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusCreated, role)
}

// DeleteRole handles DELETE /dashboard/api/roles/:id
// @Summary Delete a role
// @Tags dashboard
// @Param id path int true "Role ID"
// @Success 204
// @Failure 400,401,404,502 {object} map[string]string
// @Router /dashboard/api/roles/{id} [delete]
func (h *Handler) DeleteRole(c echo.Context) error {
	return h.deleteByID(c, h.manager.DeleteRole)
}

// Subscribers handles GET /dashboard/api/subscribers
// @Summary List newsletter subscribers
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.Subscribers
// @Failure 401,502 {object} map[string]string
// @Router /dashboard/api/subscribers [get]
func (h *Handler) Subscribers(c echo.Context) error {
	subscribers, meta, err := h.manager.Subscribers(c.Request().Context(), token(c), pageParam(c))
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, Subscribers{
		Subscribers: subscribers,
		Page:        meta.Page(),
		LastPage:    meta.LastPage(),
	})
}

// DeleteSubscriber handles DELETE /dashboard/api/subscribers/:id
// @Summary Remove a subscriber
// @Tags dashboard
// @Param id path int true "Subscriber ID"
// @Success 204
// @Failure 400,401,404,502 {object} map[string]string
// @Router /dashboard/api/subscribers/{id} [delete]
func (h *Handler) DeleteSubscriber(c echo.Context) error {
	return h.deleteByID(c, h.manager.DeleteSubscriber)
}

// UpdateSettings handles PUT /dashboard/api/settings
// @Summary Update header and footer settings
// @Tags dashboard
// @Accept json
// @Produce json
// @Param settings body cms.Settings true "Settings"
// @Success 200 {object} cms.Settings
// @Failure 400,401,422,502 {object} map[string]string
// @Router /dashboard/api/settings [put]
func (h *Handler) UpdateSettings(c echo.Context) error {
	var settings cms.Settings
	if ok, err := h.bind(c, &settings); !ok {
		return err
	}

	updated, err := h.manager.UpdateSettings(c.Request().Context(), token(c), settings)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

type deleteFunc func(ctx context.Context, token string, id int) error

func (h *Handler) deleteByID(c echo.Context, del deleteFunc) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := del(c.Request().Context(), token(c), id); err != nil {
		return h.handleCMSError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
