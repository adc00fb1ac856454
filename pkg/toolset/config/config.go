package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"
	"github.com/containers/kubernetes-mcp-server/pkg/api"
	serverconfig "github.com/containers/kubernetes-mcp-server/pkg/config"

	"github.com/rhobs/qiita-mcp/pkg/qiita"
)

// ToolsetName is the key of the toolset section in the server configuration.
const ToolsetName = "qiita"

// Config holds qiita toolset configuration
type Config struct {
	// BaseURL is the Qiita API v2 root.
	// Default: "https://qiita.com/api/v2"
	BaseURL string `toml:"base_url,omitempty"`

	// Token is the Qiita access token. When empty the token is resolved from
	// the qiita-mcp config files or QIITA_TOKEN.
	Token string `toml:"token,omitempty"`

	// Insecure controls whether to skip TLS certificate verification.
	// Default: false (verify certificates)
	Insecure bool `toml:"insecure,omitempty"`
}

var _ api.ExtendedConfig = (*Config)(nil)

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	return nil
}

// GetBaseURL returns the configured base URL or the public Qiita API.
func (c *Config) GetBaseURL() string {
	if c.BaseURL == "" {
		return qiita.DefaultBaseURL
	}
	return c.BaseURL
}

func qiitaToolsetParser(_ context.Context, primitive toml.Primitive, md toml.MetaData) (api.ExtendedConfig, error) {
	var cfg Config
	if err := md.PrimitiveDecode(primitive, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func init() {
	serverconfig.RegisterToolsetConfig(ToolsetName, qiitaToolsetParser)
}
