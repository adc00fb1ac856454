package tools

import (
	"fmt"
	"sync"

	"github.com/containers/kubernetes-mcp-server/pkg/api"

	"github.com/rhobs/qiita-mcp/pkg/credentials"
	"github.com/rhobs/qiita-mcp/pkg/qiita"
	toolsetconfig "github.com/rhobs/qiita-mcp/pkg/toolset/config"
	"github.com/rhobs/qiita-mcp/pkg/tools"
)

// registryKey identifies a registry built for one set of settings.
type registryKey struct {
	baseURL  string
	token    string
	insecure bool
}

var (
	registriesMu sync.Mutex
	registries   = map[registryKey]*tools.Registry{}
)

// getConfig retrieves the qiita toolset configuration from params.
func getConfig(params api.ToolHandlerParams) *toolsetconfig.Config {
	if cfg, ok := params.GetToolsetConfig(toolsetconfig.ToolsetName); ok {
		if qiitaCfg, ok := cfg.(*toolsetconfig.Config); ok {
			return qiitaCfg
		}
	}
	// Return default config if not found
	return &toolsetconfig.Config{}
}

// getRegistry returns the tool registry for cfg, creating it on first use.
// The token from cfg wins over the credential files and QIITA_TOKEN.
func getRegistry(cfg *toolsetconfig.Config) (*tools.Registry, error) {
	token := cfg.Token
	if token == "" {
		var err error
		token, err = credentials.Resolve()
		if err != nil {
			return nil, err
		}
	}

	key := registryKey{baseURL: cfg.GetBaseURL(), token: token, insecure: cfg.Insecure}

	registriesMu.Lock()
	defer registriesMu.Unlock()

	if r, ok := registries[key]; ok {
		return r, nil
	}

	client := qiita.NewClient(qiita.NewHTTPClient(key.token, key.insecure, nil), key.baseURL)
	r, err := tools.NewQiitaRegistry(client)
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	registries[key] = r
	return r, nil
}
