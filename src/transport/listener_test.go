package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func echoTool(l *Listener) {
	l.Server.AddTool(&mcp.Tool{
		Name:        "echo",
		Description: "returns a fixed response",
		InputSchema: map[string]any{"type": "object"},
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "response"}},
		}, nil
	})
}

func newTestListener(t *testing.T, cfg config.ServerConfig) *Listener {
	t.Helper()
	l, err := NewListener(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	return l
}

func TestNewListener_createsServer(t *testing.T) {
	l := newTestListener(t, config.ServerConfig{Transport: config.TransportStdio})
	if l.Server == nil {
		t.Fatal("expected non-nil server")
	}
}

func TestNewListener_rejectsInvalidConfig(t *testing.T) {
	tests := map[string]config.ServerConfig{
		"unsupported transport": {Transport: "grpc"},
		"empty transport":       {},
		"relative path": {
			Transport: config.TransportHTTP,
			HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0", Path: "mcp"},
		},
		"empty path": {
			Transport: config.TransportHTTP,
			HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0"},
		},
		"addr without port": {
			Transport: config.TransportHTTP,
			HTTP:      config.HTTPConfig{Addr: "localhost", Path: "/mcp"},
		},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := NewListener(cfg, testLogger())
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if l != nil {
				t.Errorf("listener = %v, want nil", l)
			}
		})
	}
}

func TestCheckConfig_acceptsServableConfig(t *testing.T) {
	tests := map[string]config.ServerConfig{
		"stdio ignores http settings": {
			Transport: config.TransportStdio,
			HTTP:      config.HTTPConfig{Path: "mcp"},
		},
		"http on all interfaces": {
			Transport: config.TransportHTTP,
			HTTP:      config.HTTPConfig{Addr: ":8080", Path: "/mcp"},
		},
		"http on loopback v6": {
			Transport: config.TransportHTTP,
			HTTP:      config.HTTPConfig{Addr: "[::1]:0", Path: "/"},
		},
		"defaults": config.Default().Server,
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			if err := CheckConfig(cfg); err != nil {
				t.Errorf("CheckConfig() = %v, want nil", err)
			}
		})
	}
}

func TestListener_inMemoryToolCall(t *testing.T) {
	l := newTestListener(t, config.ServerConfig{Transport: config.TransportStdio})
	echoTool(l)

	srvTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = l.Server.Run(ctx, srvTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	res := session.InitializeResult()
	if got := res.ServerInfo.Name; got != "eunicode" {
		t.Errorf("server name = %q, want eunicode", got)
	}
	if !strings.Contains(res.Instructions, "sanitize") {
		t.Errorf("instructions = %q, want a mention of sanitize", res.Instructions)
	}

	assertEcho(t, ctx, session)
}

func TestListener_httpServesAndShutsDown(t *testing.T) {
	l := newTestListener(t, config.ServerConfig{
		Transport: config.TransportHTTP,
		HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0", Path: "/mcp"},
	})
	echoTool(l)

	addrCh := make(chan net.Addr, 1)
	l.OnListen = func(a net.Addr) { addrCh <- a }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("run returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for listener")
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: fmt.Sprintf("http://%s/mcp", addr),
	}, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	assertEcho(t, ctx, session)
	session.Close()

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("shutdown error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}
}

func TestListener_handlerRejectsOversizedBody(t *testing.T) {
	l := newTestListener(t, config.ServerConfig{
		Transport: config.TransportHTTP,
		HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0", Path: "/mcp"},
	})
	ts := httptest.NewServer(l.Handler())
	defer ts.Close()

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"padding":"` +
		strings.Repeat("a", MaxRequestBytes) + `"}}`
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/mcp", strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		t.Errorf("status = %d, want an error status", resp.StatusCode)
	}
}

func TestListener_handlerServesOnlyConfiguredPath(t *testing.T) {
	l := newTestListener(t, config.ServerConfig{
		Transport: config.TransportHTTP,
		HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0", Path: "/sanitize"},
	})
	ts := httptest.NewServer(l.Handler())
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+"/mcp", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func assertEcho(t *testing.T, ctx context.Context, session *mcp.ClientSession) {
	t.Helper()

	var tools []*mcp.Tool
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			t.Fatalf("listing tools: %v", err)
		}
		tools = append(tools, tool)
	}
	if len(tools) != 1 || tools[0].Name != "echo" {
		t.Fatalf("tools = %v, want [echo]", tools)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "echo"})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(result.Content))
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected *TextContent, got %T", result.Content[0])
	}
	if tc.Text != "response" {
		t.Errorf("text = %q, want %q", tc.Text, "response")
	}
}
