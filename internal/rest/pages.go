package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/daniilsolovey/blogfront/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	notFoundTitle = "Page not found"
	expiredTitle  = "This listing has expired, reload the page"
)

// HomePage handles GET /
func (h *Handler) HomePage(c echo.Context) error {
	return h.renderListing(c, "Latest", h.manager.HomeSource())
}

// HomeCategoryPage handles GET /home/:category
func (h *Handler) HomeCategoryPage(c echo.Context) error {
	category := c.Param("category")
	return h.renderListing(c, category, h.manager.HomeCategorySource(category))
}

// ShowsPage handles GET /shows
func (h *Handler) ShowsPage(c echo.Context) error {
	return h.renderListing(c, "Shows", h.manager.ShowsSource())
}

// TagPage handles GET /shows/tags/:tag
func (h *Handler) TagPage(c echo.Context) error {
	tag := c.Param("tag")
	return h.renderListing(c, "#"+tag, h.manager.TagSource(tag))
}

// CategoryPage handles GET /blogs/:categoryId/:subcategoryId
func (h *Handler) CategoryPage(c echo.Context) error {
	src, err := h.manager.CategorySource(c.Param("categoryId"), c.Param("subcategoryId"))
	if err != nil {
		return h.renderNotFound(c)
	}

	return h.renderListing(c, "Blogs", src)
}

// PostPage handles GET /blogs/:categoryId/:subcategoryId/:id
func (h *Handler) PostPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.renderNotFound(c)
	}

	ctx := c.Request().Context()
	post, err := h.manager.Post(ctx, c.Param("categoryId"), c.Param("subcategoryId"), id)
	if err != nil {
		h.log.Error("failed to load post", "id", id, "error", err)
		return c.Render(http.StatusBadGateway, "not-found", h.page(ctx, blog.LoadFailedMessage))
	}
	if post == nil {
		return h.renderNotFound(c)
	}

	page := h.page(ctx, blog.StripHTML(post.Heading))
	page.Ads.Vertical = h.manager.Ad(ctx, blog.PlacementVertical)

	return c.Render(http.StatusOK, "post", PostPage{
		Page:  page,
		Post:  *post,
		Share: h.manager.Share(*post),
	})
}

// LoadMore handles GET /mounts/:mountId/more. It answers 204 when the
// listing has nothing more to load.
func (h *Handler) LoadMore(c echo.Context) error {
	m, ok, err := h.mount(c)
	if !ok {
		return err
	}

	// The page is applied to the mount even if the browser goes away.
	err = m.Loader.LoadMore(context.WithoutCancel(c.Request().Context()))
	switch {
	case errors.Is(err, blog.ErrExhausted),
		errors.Is(err, blog.ErrBusy),
		errors.Is(err, blog.ErrNotMounted),
		errors.Is(err, blog.ErrStale):
		return c.NoContent(http.StatusNoContent)
	}

	return c.Render(http.StatusOK, "list", h.newList(m))
}

// ToggleShare handles POST /mounts/:mountId/share/:postId
func (h *Handler) ToggleShare(c echo.Context) error {
	m, ok, err := h.mount(c)
	if !ok {
		return err
	}

	id, err := paramID(c, "postId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	m.Menu.Toggle(id)

	return c.Render(http.StatusOK, "list", h.newList(m))
}

// DismissError handles POST /mounts/:mountId/dismiss
func (h *Handler) DismissError(c echo.Context) error {
	m, ok, err := h.mount(c)
	if !ok {
		return err
	}

	m.Loader.DismissError()

	return c.Render(http.StatusOK, "list", h.newList(m))
}

func (h *Handler) renderListing(c echo.Context, title string, src blog.Source) error {
	ctx := c.Request().Context()
	m := h.store.New()

	ads, err := h.manager.MountWithAds(ctx, m.Loader, src)
	if err != nil {
		h.log.Warn("listing mounted with error", "key", src.Key(), "error", err)
	}

	page := h.page(ctx, title)
	page.Ads = ads

	return c.Render(http.StatusOK, "listing", ListingPage{
		Page: page,
		List: h.newList(m),
	})
}

func (h *Handler) renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "not-found", h.page(c.Request().Context(), notFoundTitle))
}

// page loads the site chrome. Pages render with default chrome when the
// settings are unavailable.
func (h *Handler) page(ctx context.Context, title string) Page {
	settings, err := h.manager.Settings(ctx)
	if err != nil {
		h.log.Warn("failed to load site settings", "error", err)
		settings = cms.Settings{}
	}

	return Page{Title: title, Settings: settings}
}

// mount looks up the mount of the request. When it reports false the
// request has already been answered.
func (h *Handler) mount(c echo.Context) (*session.Mount, bool, error) {
	m, err := h.store.Get(c.Param("mountId"))
	if err != nil {
		return nil, false, h.handleError(c, err, http.StatusGone, expiredTitle)
	}

	return m, true, nil
}
