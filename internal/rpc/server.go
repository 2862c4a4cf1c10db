package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/blogfront/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcService := NewContentService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogfront", nil))

	return rpcServer
}
