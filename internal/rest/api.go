package rest

import (
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/labstack/echo/v4"
)

// Contents handles GET /api/v1/contents/:categoryId/:subcategoryId
// @Summary List contents of a subcategory
// @Description Returns one page of sanitized posts with pagination info
// @Tags contents
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param subcategoryId path string true "Subcategory ID"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.PostsPage
// @Failure 400,502 {object} map[string]string
// @Router /api/v1/contents/{categoryId}/{subcategoryId} [get]
func (h *Handler) Contents(c echo.Context) error {
	src, err := h.manager.CategorySource(c.Param("categoryId"), c.Param("subcategoryId"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category")
	}

	return h.listPage(c, src)
}

// Content handles GET /api/v1/contents/:categoryId/:subcategoryId/:id
// @Summary Get a single post
// @Tags contents
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param subcategoryId path string true "Subcategory ID"
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,404,502 {object} map[string]string
// @Router /api/v1/contents/{categoryId}/{subcategoryId}/{id} [get]
func (h *Handler) Content(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.manager.Post(c.Request().Context(), c.Param("categoryId"), c.Param("subcategoryId"), id)
	if err != nil {
		return h.handleCMSError(c, err)
	}
	if post == nil {
		return h.handleError(c, nil, http.StatusNotFound, "post not found")
	}

	return c.JSON(http.StatusOK, NewPost(*post, h.manager.Share(*post)))
}

// Home handles GET /api/v1/home
// @Summary List home page posts
// @Tags contents
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.PostsPage
// @Failure 400,502 {object} map[string]string
// @Router /api/v1/home [get]
func (h *Handler) Home(c echo.Context) error {
	return h.listPage(c, h.manager.HomeSource())
}

// Shows handles GET /api/v1/shows
// @Summary List shows
// @Tags contents
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.PostsPage
// @Failure 400,502 {object} map[string]string
// @Router /api/v1/shows [get]
func (h *Handler) Shows(c echo.Context) error {
	return h.listPage(c, h.manager.ShowsSource())
}

// ShowTags handles GET /api/v1/show-tags/:tag
// @Summary List shows with a tag
// @Tags contents
// @Produce json
// @Param tag path string true "Tag"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.PostsPage
// @Failure 400,502 {object} map[string]string
// @Router /api/v1/show-tags/{tag} [get]
func (h *Handler) ShowTags(c echo.Context) error {
	return h.listPage(c, h.manager.TagSource(c.Param("tag")))
}

// Advertising handles GET /api/v1/advertising
// @Summary Get both advertising slots
// @Description A slot that fails to load is returned empty
// @Tags advertising
// @Produce json
// @Success 200 {object} rest.Ads
// @Router /api/v1/advertising [get]
func (h *Handler) Advertising(c echo.Context) error {
	return c.JSON(http.StatusOK, NewAds(h.manager.Ads(c.Request().Context())))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories with their subcategories
// @Tags categories
// @Produce json
// @Success 200 {array} cms.Category
// @Failure 502 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context())
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// Subscribe handles POST /api/v1/subscribe
// @Summary Subscribe an email to the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param form body cms.SubscribeForm true "Subscriber"
// @Success 201 {object} map[string]string
// @Failure 400,422,502 {object} map[string]string
// @Router /api/v1/subscribe [post]
func (h *Handler) Subscribe(c echo.Context) error {
	var form cms.SubscribeForm
	if ok, err := h.bind(c, &form); !ok {
		return err
	}

	if err := h.manager.Subscribe(c.Request().Context(), form); err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"status": "subscribed"})
}

func (h *Handler) listPage(c echo.Context, src blog.Source) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.manager.ListPage(c.Request().Context(), src, req.Page)
	if err != nil {
		return h.handleCMSError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostsPage(h.newPosts(page.Posts), page))
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
