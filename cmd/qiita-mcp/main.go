package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/common/promslog"

	"github.com/rhobs/qiita-mcp/pkg/config"
	"github.com/rhobs/qiita-mcp/pkg/credentials"
	"github.com/rhobs/qiita-mcp/pkg/mcp"
	"github.com/rhobs/qiita-mcp/pkg/metrics"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run parses args, resolves the Qiita token and serves until the transport
// stops. The token is resolved before any client is created, so a missing
// credential never reaches the network.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Parse command line flags
	fs := flag.NewFlagSet("qiita-mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var configPath = fs.String("config", "", "Path to a TOML configuration file")
	var listen = fs.String("listen", "", "Listen address for HTTP mode (e.g., :9100, 127.0.0.1:8080)")
	var baseURL = fs.String("base-url", "", "Qiita API base URL (default https://qiita.com/api/v2, or $QIITA_API_URL)")
	var insecure = fs.Bool("insecure", false, "Skip TLS certificate verification")
	var logLevel = fs.String("log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)

	// Explicit flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "base-url":
			cfg.BaseURL = *baseURL
		case "insecure":
			cfg.Insecure = *insecure
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configure slog with specified log level
	if err := configureLogging(cfg.LogLevel, stderr); err != nil {
		return err
	}

	token, err := credentials.Resolve()
	if err != nil {
		var cfgErr *credentials.ConfigurationError
		if errors.As(err, &cfgErr) {
			slog.Error("Qiita access token is not configured", "checked", cfgErr.Checked)
		} else {
			slog.Error("Failed to resolve Qiita access token", "error", err)
		}
		return err
	}

	reg, collectors := metrics.NewRegistry()

	registry, err := mcp.NewRegistry(mcp.QiitaMCPOptions{
		BaseURL:  cfg.BaseURL,
		Token:    token,
		Insecure: cfg.Insecure,
		Metrics:  collectors,
	})
	if err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	mcpServer := mcp.NewMCPServer(registry)

	slog.Info("Starting server", "BaseURL", cfg.BaseURL, "tools", len(registry.Tools()))

	// Choose server mode based on configuration
	if cfg.Listen != "" {
		if err := mcp.Serve(ctx, mcpServer, cfg.Listen, reg); err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	}

	// Start server on stdio (default mode)
	if err := mcp.ServeStdio(ctx, mcpServer, stdin, stdout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// configureLogging sets up the slog logger with the specified log level.
// Logs go to w so they never mix with the stdio transport.
func configureLogging(levelStr string, w io.Writer) error {
	level := promslog.NewLevel()
	if err := level.Set(levelStr); err != nil {
		return err
	}

	format := promslog.NewFormat()
	if err := format.Set("logfmt"); err != nil {
		return err
	}

	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
		Writer: w,
	})
	slog.SetDefault(logger)
	return nil
}
