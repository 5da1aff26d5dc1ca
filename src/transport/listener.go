// Package transport serves the eunicode MCP server over stdio or
// streamable HTTP.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	shutdownTimeout = 5 * time.Second

	// MaxRequestBytes bounds one HTTP request body. Tool arguments carry
	// untrusted text, so a client cannot make the server buffer more.
	MaxRequestBytes = 1 << 20
)

// ErrInvalidConfig is returned for server settings that cannot be served.
var ErrInvalidConfig = errors.New("invalid server config")

const instructions = "eunicode sanitizes untrusted text before it reaches a terminal or a user. " +
	"Call sanitize to normalize text to safe ASCII, detect to check it for spoofing and " +
	"injection characters, and characters to see the Unicode metadata of every character. " +
	"Terminal escape sequences are filtered from every input first."

// Listener wraps the MCP server that faces clients. Tools are registered
// on Server before calling Run.
type Listener struct {
	Server *mcp.Server
	cfg    config.ServerConfig
	logger *slog.Logger

	// OnListen, when set, is called with the bound address once the HTTP
	// transport is accepting connections.
	OnListen func(net.Addr)
}

// CheckConfig reports whether cfg can be served. Settings from serve
// flags reach the listener without passing through config.Load, so they
// are checked here as well.
func CheckConfig(cfg config.ServerConfig) error {
	switch cfg.Transport {
	case config.TransportStdio:
		return nil
	case config.TransportHTTP:
	default:
		return fmt.Errorf("%w: transport must be %q or %q, got %q",
			ErrInvalidConfig, config.TransportStdio, config.TransportHTTP, cfg.Transport)
	}

	if !strings.HasPrefix(cfg.HTTP.Path, "/") {
		return fmt.Errorf("%w: http path %q must start with \"/\"", ErrInvalidConfig, cfg.HTTP.Path)
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("%w: http addr %q: %v", ErrInvalidConfig, cfg.HTTP.Addr, err)
	}
	return nil
}

// NewListener checks cfg and creates the eunicode MCP server for it.
func NewListener(cfg config.ServerConfig, logger *slog.Logger) (*Listener, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}

	srv := mcp.NewServer(
		&mcp.Implementation{
			Name:    "eunicode",
			Title:   "eunicode text sanitizer",
			Version: Version,
		},
		&mcp.ServerOptions{Instructions: instructions, Logger: logger},
	)
	return &Listener{
		Server: srv,
		cfg:    cfg,
		logger: logger.With("area", "transport", "transport", cfg.Transport),
	}, nil
}

// Run serves on the configured transport and blocks until ctx is
// cancelled or the transport closes.
func (l *Listener) Run(ctx context.Context) error {
	if l.cfg.Transport == config.TransportHTTP {
		return l.runHTTP(ctx)
	}
	l.logger.Info("serving on stdio")
	return l.Server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP handler for the MCP endpoint. Request bodies
// over MaxRequestBytes are rejected.
func (l *Listener) Handler() http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return l.Server },
		&mcp.StreamableHTTPOptions{Logger: l.logger},
	)

	mux := http.NewServeMux()
	mux.Handle(l.cfg.HTTP.Path, http.MaxBytesHandler(mcpHandler, MaxRequestBytes))
	return mux
}

func (l *Listener) runHTTP(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", l.cfg.HTTP.Addr, err)
	}
	l.logger.Info("serving on HTTP", "endpoint", "http://"+ln.Addr().String()+l.cfg.HTTP.Path)

	srv := &http.Server{Handler: l.Handler(), ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if l.OnListen != nil {
		l.OnListen(ln.Addr())
	}

	select {
	case <-ctx.Done():
		l.logger.Info("shutting down HTTP transport")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
