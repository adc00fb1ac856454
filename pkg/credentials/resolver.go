package credentials

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvToken is the environment variable consulted after all config files.
const EnvToken = "QIITA_TOKEN"

// DefaultConfigPaths are the home-relative config files checked, in order.
var DefaultConfigPaths = []string{
	filepath.Join(".qiita-mcp", "config.json"),
	filepath.Join(".config", "qiita-mcp", "config.json"),
}

// ConfigurationError is returned when no credential source yields a token.
type ConfigurationError struct {
	Checked []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no Qiita access token found (checked: %s)", strings.Join(e.Checked, ", "))
}

// configFile mirrors the subset of the JSON config file we care about.
type configFile struct {
	QiitaToken string `json:"qiitaToken"`
	Services   struct {
		Qiita struct {
			Token string `json:"token"`
		} `json:"qiita"`
	} `json:"services"`
}

// Resolver locates the Qiita access token.
type Resolver struct {
	// HomeDir is the base for relative Paths. Defaults to os.UserHomeDir.
	HomeDir string
	// Paths are checked in order. Relative paths are joined with HomeDir.
	Paths []string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// NewResolver returns a Resolver using the default paths and the process environment.
func NewResolver() *Resolver {
	return &Resolver{
		Paths:  DefaultConfigPaths,
		Getenv: os.Getenv,
	}
}

// Resolve is shorthand for NewResolver().Resolve().
func Resolve() (string, error) {
	return NewResolver().Resolve()
}

// Resolve returns the first non-empty token found. Missing or malformed
// config files are skipped.
func (r *Resolver) Resolve() (string, error) {
	var checked []string

	home := r.HomeDir
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	for _, p := range r.Paths {
		path := p
		if !filepath.IsAbs(path) {
			if home == "" {
				continue
			}
			path = filepath.Join(home, path)
		}
		checked = append(checked, path)

		token, err := tokenFromFile(path)
		if err != nil {
			slog.Debug("Skipping credential file", "path", path, "error", err)
			continue
		}
		if token != "" {
			slog.Debug("Using Qiita token from config file", "path", path)
			return token, nil
		}
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	checked = append(checked, "$"+EnvToken)
	if token := strings.TrimSpace(getenv(EnvToken)); token != "" {
		slog.Debug("Using Qiita token from environment", "var", EnvToken)
		return token, nil
	}

	return "", &ConfigurationError{Checked: checked}
}

func tokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if token := strings.TrimSpace(cfg.QiitaToken); token != "" {
		return token, nil
	}
	return strings.TrimSpace(cfg.Services.Qiita.Token), nil
}
