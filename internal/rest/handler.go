package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/daniilsolovey/blogfront/internal/session"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	manager *blog.Manager
	store   *session.Store
	log     *slog.Logger
}

func NewHandler(manager *blog.Manager, store *session.Store, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		store:   store,
		log:     log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleCMSError maps a failed backend call to the response of the edge.
func (h *Handler) handleCMSError(c echo.Context, err error) error {
	var cmsErr *cms.Error
	if !errors.As(err, &cmsErr) {
		return h.handleError(c, err, http.StatusBadGateway, "backend unavailable")
	}

	switch cmsErr.Code {
	case http.StatusUnauthorized:
		return h.handleError(c, err, http.StatusUnauthorized, "unauthorized")
	case http.StatusForbidden:
		return h.handleError(c, err, http.StatusForbidden, "forbidden")
	case http.StatusNotFound:
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case http.StatusUnprocessableEntity:
		return h.handleError(c, err, http.StatusUnprocessableEntity, cmsErr.Message)
	}

	message := cmsErr.Message
	if message == "" {
		message = "backend error"
	}

	return h.handleError(c, err, http.StatusBadGateway, message)
}

func paramID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}

	return id, nil
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
