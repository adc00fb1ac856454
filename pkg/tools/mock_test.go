package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rhobs/qiita-mcp/pkg/qiita"
)

// MockedAPI is a mock implementation of qiita.API for testing
type MockedAPI struct {
	AuthenticatedUserFunc      func(ctx context.Context) (any, error)
	SearchItemsFunc            func(ctx context.Context, query string, opts qiita.ListOptions) (any, error)
	GetItemFunc                func(ctx context.Context, itemID string) (any, error)
	AuthenticatedUserItemsFunc func(ctx context.Context, opts qiita.ListOptions) (any, error)
	ListTagsFunc               func(ctx context.Context, sort string, opts qiita.ListOptions) (any, error)
	CreateItemFunc             func(ctx context.Context, item qiita.NewItem) (any, error)
}

func (m *MockedAPI) AuthenticatedUser(ctx context.Context) (any, error) {
	if m.AuthenticatedUserFunc != nil {
		return m.AuthenticatedUserFunc(ctx)
	}
	return map[string]any{}, nil
}

func (m *MockedAPI) SearchItems(ctx context.Context, query string, opts qiita.ListOptions) (any, error) {
	if m.SearchItemsFunc != nil {
		return m.SearchItemsFunc(ctx, query, opts)
	}
	return []any{}, nil
}

func (m *MockedAPI) GetItem(ctx context.Context, itemID string) (any, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, itemID)
	}
	return map[string]any{}, nil
}

func (m *MockedAPI) AuthenticatedUserItems(ctx context.Context, opts qiita.ListOptions) (any, error) {
	if m.AuthenticatedUserItemsFunc != nil {
		return m.AuthenticatedUserItemsFunc(ctx, opts)
	}
	return []any{}, nil
}

func (m *MockedAPI) ListTags(ctx context.Context, sort string, opts qiita.ListOptions) (any, error) {
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx, sort, opts)
	}
	return []any{}, nil
}

func (m *MockedAPI) CreateItem(ctx context.Context, item qiita.NewItem) (any, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, item)
	}
	return map[string]any{}, nil
}

// Ensure MockedAPI implements qiita.API at compile time
var _ qiita.API = (*MockedAPI)(nil)

// args decodes a JSON object the same way the MCP transport does.
func args(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("invalid test arguments %s: %v", raw, err)
	}
	return m
}

func newTestRegistry(t *testing.T, client qiita.API, opts ...Option) *Registry {
	t.Helper()
	r, err := NewQiitaRegistry(client, opts...)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}
	return r
}
