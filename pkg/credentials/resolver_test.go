package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		env       map[string]string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "direct token field in first file",
			files:     map[string]string{".qiita-mcp/config.json": `{"qiitaToken":"first"}`},
			env:       map[string]string{EnvToken: "env"},
			wantToken: "first",
		},
		{
			name:      "nested service token",
			files:     map[string]string{".qiita-mcp/config.json": `{"services":{"qiita":{"token":"nested"}}}`},
			wantToken: "nested",
		},
		{
			name:      "direct field wins over nested",
			files:     map[string]string{".qiita-mcp/config.json": `{"qiitaToken":"direct","services":{"qiita":{"token":"nested"}}}`},
			wantToken: "direct",
		},
		{
			name:      "second file used when first missing",
			files:     map[string]string{".config/qiita-mcp/config.json": `{"qiitaToken":"second"}`},
			env:       map[string]string{EnvToken: "env"},
			wantToken: "second",
		},
		{
			name: "malformed file skipped",
			files: map[string]string{
				".qiita-mcp/config.json":        `{not json`,
				".config/qiita-mcp/config.json": `{"qiitaToken":"second"}`,
			},
			wantToken: "second",
		},
		{
			name:      "empty token in file falls through to env",
			files:     map[string]string{".qiita-mcp/config.json": `{"qiitaToken":""}`},
			env:       map[string]string{EnvToken: "env"},
			wantToken: "env",
		},
		{
			name:      "env only",
			env:       map[string]string{EnvToken: "  env  "},
			wantToken: "env",
		},
		{
			name:    "nothing configured",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			for p, c := range tt.files {
				writeFile(t, filepath.Join(home, p), c)
			}

			r := &Resolver{HomeDir: home, Paths: DefaultConfigPaths, Getenv: envMap(tt.env)}
			token, err := r.Resolve()

			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigurationError, got %v", err)
				}
				if len(cfgErr.Checked) != len(DefaultConfigPaths)+1 {
					t.Errorf("expected %d checked sources, got %v", len(DefaultConfigPaths)+1, cfgErr.Checked)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

func TestResolveAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	writeFile(t, path, `{"qiitaToken":"abs"}`)

	r := &Resolver{Paths: []string{path}, Getenv: envMap(nil)}
	token, err := r.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abs" {
		t.Errorf("expected token %q, got %q", "abs", token)
	}
}
