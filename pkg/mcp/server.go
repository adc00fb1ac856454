package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rhobs/qiita-mcp/pkg/metrics"
	"github.com/rhobs/qiita-mcp/pkg/qiita"
	"github.com/rhobs/qiita-mcp/pkg/tools"
)

// QiitaMCPOptions contains configuration options for the MCP server
type QiitaMCPOptions struct {
	BaseURL  string
	Token    string
	Insecure bool
	// Metrics is optional; when nil no metrics are recorded.
	Metrics *metrics.Collectors
}

const (
	mcpEndpoint            = "/mcp"
	healthEndpoint         = "/health"
	metricsEndpoint        = "/metrics"
	serverName             = "qiita-mcp"
	serverVersion          = "1.0.0"
	defaultShutdownTimeout = 10 * time.Second
)

// NewRegistry builds the Qiita API client from opts and registers every tool.
func NewRegistry(opts QiitaMCPOptions) (*tools.Registry, error) {
	if opts.Token == "" {
		return nil, errors.New("a Qiita access token is required")
	}

	httpClient := qiita.NewHTTPClient(opts.Token, opts.Insecure, opts.Metrics)
	client := qiita.NewClient(httpClient, opts.BaseURL)

	return tools.NewQiitaRegistry(client, tools.WithCollectors(opts.Metrics))
}

func NewMCPServer(registry *tools.Registry) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithLogging(),
		server.WithToolCapabilities(true),
		server.WithInstructions(tools.ServerPrompt),
	)

	SetupTools(mcpServer, registry)

	return mcpServer
}

// SetupTools adds every registry tool to the MCP server.
func SetupTools(mcpServer *server.MCPServer, registry *tools.Registry) {
	for _, def := range registry.Tools() {
		mcpServer.AddTool(def.ToMCPTool(), ToolHandler(registry, def.Name))
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		if r.ContentLength > 0 {
			slog.Debug("Request content length", "content_length", r.ContentLength)
		}
		next.ServeHTTP(w, r)
	})
}

// NewHTTPHandler serves the streamable HTTP transport on /mcp and /, a health
// check on /health and, when gatherer is non-nil, Prometheus metrics on /metrics.
func NewHTTPHandler(mcpServer *server.MCPServer, gatherer prometheus.Gatherer, opts ...server.StreamableHTTPOption) http.Handler {
	mux := http.NewServeMux()

	opts = append([]server.StreamableHTTPOption{server.WithStateLess(true)}, opts...)
	streamableHTTPServer := server.NewStreamableHTTPServer(mcpServer, opts...)
	mux.Handle(mcpEndpoint, streamableHTTPServer)

	mux.Handle("/", streamableHTTPServer)

	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if gatherer != nil {
		mux.Handle(metricsEndpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return loggingMiddleware(mux)
}

func Serve(ctx context.Context, mcpServer *server.MCPServer, listenAddr string, gatherer prometheus.Gatherer) error {
	httpServer := &http.Server{
		Addr:              listenAddr,
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer.Handler = NewHTTPHandler(mcpServer, gatherer, server.WithStreamableHTTPServer(httpServer))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "listen_addr", listenAddr, "mcp_endpoint", mcpEndpoint)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.Warn("Received signal, initiating graceful shutdown", "signal", sig)
		cancel()
	case <-ctx.Done():
		slog.Warn("Context cancelled, initiating graceful shutdown")
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()

	slog.Info("Shutting down HTTP server gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		return err
	}

	slog.Info("HTTP server shutdown complete")
	return nil
}

// ServeStdio runs the stdio transport until in is closed or ctx is cancelled.
func ServeStdio(ctx context.Context, mcpServer *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(mcpServer)
	return stdioServer.Listen(ctx, in, out)
}
