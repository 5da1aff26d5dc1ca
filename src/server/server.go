package server

import (
	"context"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/Easy-Infra-Ltd/eunicode/src/transport"
)

// Server exposes the sanitizer as MCP tools on the configured transport.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	// onListen is passed to the HTTP listener; set by tests.
	onListen func(net.Addr)
}

// New creates a Server from the given config and logger.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Run registers the tools and serves until SIGINT/SIGTERM or ctx
// cancellation.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l, err := transport.NewListener(s.cfg.Server, s.logger)
	if err != nil {
		return err
	}
	l.OnListen = s.onListen

	count := RegisterTools(l.Server, s.cfg, s.logger)
	s.logger.Info("tools registered", "count", count, "transport", s.cfg.Server.Transport)

	return l.Run(ctx)
}
