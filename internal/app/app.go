package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blogfront/config"
	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/daniilsolovey/blogfront/internal/rest"
	"github.com/daniilsolovey/blogfront/internal/rpc"
	"github.com/daniilsolovey/blogfront/internal/session"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/v1/rpc/"

type App struct {
	Logger *slog.Logger
	Echo   *echo.Echo
	Store  *session.Store
	Config config.Config
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	opts := []cms.ClientOption{cms.WithTimeout(cfg.Backend.Timeout.Duration)}
	if cfg.Backend.LogRequests {
		opts = append(opts, cms.WithHook(cms.NewRequestHook(logger)))
	}

	manager := blog.NewManager(
		cms.NewClient(cfg.Backend.URL, opts...),
		blog.NewResolver(cfg.Backend.AssetsURL),
		cfg.App.SiteURL,
		logger,
	)
	store := session.NewStore(cfg.Listing.MountTTL.Duration, logger)

	e, err := rest.NewHandler(manager, store, logger).RegisterRoutes()
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		Logger: logger,
		Echo:   e,
		Store:  store,
		Config: cfg,
	}, nil
}

// Run serves HTTP until the server is shut down. Idle listing mounts are
// expired while ctx is alive.
func (a *App) Run(ctx context.Context, port int) error {
	go a.Store.Run(ctx)

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.Info("service started", "addr", addr)

	if err := a.Echo.Start(addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
