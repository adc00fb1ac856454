package tools

import (
	"context"
	"fmt"

	"github.com/containers/kubernetes-mcp-server/pkg/api"

	toolsetconfig "github.com/rhobs/qiita-mcp/pkg/toolset/config"
)

// invoke runs the named tool against the registry for cfg.
func invoke(ctx context.Context, cfg *toolsetconfig.Config, name string, args map[string]any) (*api.ToolCallResult, error) {
	registry, err := getRegistry(cfg)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to create Qiita client: %w", err)), nil
	}

	result, err := registry.Invoke(ctx, name, args)
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	return result.ToToolsetResult()
}

// handlerFor returns a toolset handler bound to a tool name.
func handlerFor(name string) func(api.ToolHandlerParams) (*api.ToolCallResult, error) {
	return func(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
		return invoke(params.Context, getConfig(params), name, params.GetArguments())
	}
}
