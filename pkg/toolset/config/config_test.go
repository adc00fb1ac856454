package config

import (
	"context"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/rhobs/qiita-mcp/pkg/qiita"
)

func TestQiitaToolsetParser(t *testing.T) {
	var doc struct {
		Qiita toml.Primitive `toml:"qiita"`
	}
	md, err := toml.Decode(`
[qiita]
base_url = "https://qiita.example.com/api/v2"
token = "secret"
insecure = true
`, &doc)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	parsed, err := qiitaToolsetParser(context.Background(), doc.Qiita, md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, ok := parsed.(*Config)
	if !ok {
		t.Fatalf("expected *Config, got %T", parsed)
	}
	if cfg.BaseURL != "https://qiita.example.com/api/v2" || cfg.Token != "secret" || !cfg.Insecure {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}},
		{name: "https", cfg: Config{BaseURL: "https://qiita.com/api/v2"}},
		{name: "bad scheme", cfg: Config{BaseURL: "file:///etc/passwd"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetBaseURL(t *testing.T) {
	if got := (&Config{}).GetBaseURL(); got != qiita.DefaultBaseURL {
		t.Errorf("expected default, got %s", got)
	}
	if got := (&Config{BaseURL: "http://localhost/api/v2"}).GetBaseURL(); got != "http://localhost/api/v2" {
		t.Errorf("expected configured URL, got %s", got)
	}
}
