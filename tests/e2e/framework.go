//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/rhobs/qiita-mcp/pkg/mcp"
	"github.com/rhobs/qiita-mcp/pkg/metrics"
)

const (
	defaultTimeout = 30 * time.Second
	fakeToken      = "e2e-token"
)

// TestConfig holds configuration and runtime state for e2e tests
type TestConfig struct {
	Timeout time.Duration

	// Runtime state
	MCPURL string
	// Local is true when the MCP server and a fake Qiita API run in-process.
	Local bool

	qiitaServer *httptest.Server
	mcpServer   *httptest.Server
	cleanedUp   bool
}

// NewTestConfig creates a new TestConfig with defaults or env overrides
func NewTestConfig() *TestConfig {
	config := &TestConfig{
		MCPURL:  strings.TrimSuffix(os.Getenv("QIITA_MCP_URL"), "/"),
		Timeout: defaultTimeout,
	}
	config.Local = config.MCPURL == ""
	fmt.Printf("Test config: url=%q, local=%v, timeout=%v\n", config.MCPURL, config.Local, config.Timeout)
	return config
}

// Setup starts the in-process servers unless QIITA_MCP_URL points at a running one.
func (c *TestConfig) Setup(ctx context.Context) error {
	if !c.Local {
		return c.waitForHealth(ctx)
	}

	c.qiitaServer = httptest.NewServer(newFakeQiita())

	reg, collectors := metrics.NewRegistry()
	registry, err := mcp.NewRegistry(mcp.QiitaMCPOptions{
		BaseURL: c.qiitaServer.URL + "/api/v2",
		Token:   fakeToken,
		Metrics: collectors,
	})
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	c.mcpServer = httptest.NewServer(mcp.NewHTTPHandler(mcp.NewMCPServer(registry), reg))
	c.MCPURL = c.mcpServer.URL
	return c.waitForHealth(ctx)
}

func (c *TestConfig) waitForHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MCPURL+"/health", nil)
		if err != nil {
			return err
		}
		if resp, err := http.DefaultClient.Do(req); err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("MCP server at %s not healthy: %w", c.MCPURL, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Cleanup stops the in-process servers.
func (c *TestConfig) Cleanup() {
	if c.cleanedUp {
		return
	}
	c.cleanedUp = true
	if c.mcpServer != nil {
		c.mcpServer.Close()
	}
	if c.qiitaServer != nil {
		c.qiitaServer.Close()
	}
}

// newFakeQiita serves canned Qiita API v2 responses.
func newFakeQiita() http.Handler {
	mux := http.NewServeMux()

	authorized := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Header.Get("Authorization") != "Bearer "+fakeToken {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthorized","type":"unauthorized"}`))
				return
			}
			h(w, r)
		}
	}

	mux.HandleFunc("GET /api/v2/authenticated_user", authorized(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"e2e-user","name":"E2E","items_count":1}`))
	}))
	mux.HandleFunc("GET /api/v2/authenticated_user/items", authorized(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"0123456789abcdef0123","title":"Mine","private":true}]`))
	}))
	mux.HandleFunc("GET /api/v2/items", authorized(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"0123456789abcdef0123","title":"` + r.URL.Query().Get("query") + `"}]`))
	}))
	mux.HandleFunc("GET /api/v2/items/{id}", authorized(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "0123456789abcdef0123" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not found","type":"not_found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"0123456789abcdef0123","title":"Mine","body":"# Hello"}`))
	}))
	mux.HandleFunc("POST /api/v2/items", authorized(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"fedcba9876543210fedc","title":"Created"}`))
	}))
	mux.HandleFunc("GET /api/v2/tags", authorized(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sort") == "name" {
			_, _ = w.Write([]byte(`[{"id":"AWS","items_count":10},{"id":"Go","items_count":20}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":"Go","items_count":20},{"id":"AWS","items_count":10}]`))
	}))

	return mux
}
