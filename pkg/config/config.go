package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/common/promslog"

	"github.com/rhobs/qiita-mcp/pkg/qiita"
)

// EnvBaseURL overrides the Qiita API base URL when no flag or file sets it.
const EnvBaseURL = "QIITA_API_URL"

// Config holds qiita-mcp server configuration
type Config struct {
	// BaseURL is the Qiita API v2 root. Default: https://qiita.com/api/v2
	BaseURL string `toml:"base_url,omitempty"`

	// Listen is the HTTP listen address. Empty selects the stdio transport.
	Listen string `toml:"listen,omitempty"`

	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `toml:"log_level,omitempty"`

	// Insecure controls whether to skip TLS certificate verification.
	Insecure bool `toml:"insecure,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BaseURL:  qiita.DefaultBaseURL,
		LogLevel: "info",
	}
}

// Load reads a TOML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	return cfg, nil
}

// ApplyEnv fills BaseURL from the environment when it still holds the default.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvBaseURL); v != "" && (c.BaseURL == "" || c.BaseURL == qiita.DefaultBaseURL) {
		c.BaseURL = v
	}
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", c.BaseURL)
	}

	if err := promslog.NewLevel().Set(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}
