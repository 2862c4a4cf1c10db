package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const (
	apiV1Prefix     = "/api/v1"
	dashboardPrefix = "/dashboard/api"
	mountsPrefix    = "/mounts/:mountId"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	staticPath  = "/static"
)

// RegisterRoutes builds the echo instance serving pages, fragments and the
// JSON APIs.
func (h *Handler) RegisterRoutes() (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = NewValidator()
	e.Use(h.loggingMiddleware)

	h.registerPages(e)
	h.registerMounts(e.Group(mountsPrefix))
	h.registerAPIRoutes(e.Group(apiV1Prefix))
	h.registerDashboard(e.Group(dashboardPrefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)
	e.StaticFS(staticPath, staticFiles())

	return e, nil
}

func (h *Handler) registerPages(e *echo.Echo) {
	e.GET("/", h.HomePage)
	e.GET("/home/:category", h.HomeCategoryPage)
	e.GET("/shows", h.ShowsPage)
	e.GET("/shows/tags/:tag", h.TagPage)
	e.GET("/blogs/:categoryId/:subcategoryId", h.CategoryPage)
	e.GET("/blogs/:categoryId/:subcategoryId/:id", h.PostPage)
}

func (h *Handler) registerMounts(g *echo.Group) {
	g.GET("/more", h.LoadMore)
	g.POST("/share/:postId", h.ToggleShare)
	g.POST("/dismiss", h.DismissError)
}

func (h *Handler) registerAPIRoutes(g *echo.Group) {
	g.GET("/contents/:categoryId/:subcategoryId", h.Contents)
	g.GET("/contents/:categoryId/:subcategoryId/:id", h.Content)
	g.GET("/home", h.Home)
	g.GET("/shows", h.Shows)
	g.GET("/show-tags/:tag", h.ShowTags)
	g.GET("/advertising", h.Advertising)
	g.GET("/categories", h.Categories)
	g.POST("/subscribe", h.Subscribe)
}

func (h *Handler) registerDashboard(g *echo.Group) {
	g.POST("/login", h.Login)

	auth := g.Group("", h.requireToken)
	auth.POST("/logout", h.Logout)
	auth.GET("/nav", h.Nav)

	auth.GET("/contents", h.DashboardContents)
	auth.POST("/contents", h.CreateContent)
	auth.PUT("/contents/:id", h.UpdateContent)
	auth.DELETE("/contents/:id", h.DeleteContent)
	auth.PATCH("/contents/:id/status", h.ChangeStatus)

	auth.POST("/categories", h.CreateCategory)
	auth.PUT("/categories/:id", h.UpdateCategory)
	auth.DELETE("/categories/:id", h.DeleteCategory)
	auth.GET("/categories/:id/subcategories", h.Subcategories)
	auth.POST("/subcategories", h.CreateSubcategory)
	auth.PUT("/subcategories/:id", h.UpdateSubcategory)
	auth.DELETE("/subcategories/:id", h.DeleteSubcategory)

	auth.PUT("/advertising/:placement", h.UpdateAdvertising)

	auth.GET("/roles", h.Roles)
	auth.POST("/roles", h.CreateRole)
	auth.DELETE("/roles/:id", h.DeleteRole)

	auth.GET("/subscribers", h.Subscribers)
	auth.DELETE("/subscribers/:id", h.DeleteSubscriber)

	auth.PUT("/settings", h.UpdateSettings)
}

func (h *Handler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api docs not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
