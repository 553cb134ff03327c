package main

import (
	"path/filepath"
	"testing"

	"github.com/qwkiks/meowcli/internal/config"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "Not set"},
		{"short", "short"},
		{"sk-or-1234567890", "sk-o...890"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSetSettingPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Load(path)

	if err := setSetting(path, cfg, []string{"api_key", "openrouter", "sk-or-123"}); err != nil {
		t.Fatalf("setSetting: %v", err)
	}
	if err := setSetting(path, cfg, []string{"provider", "openrouter"}); err != nil {
		t.Fatalf("setSetting: %v", err)
	}
	if err := setSetting(path, cfg, []string{"model", "openrouter", "some/model"}); err != nil {
		t.Fatalf("setSetting: %v", err)
	}

	loaded := config.Load(path)
	if loaded.DefaultProvider != "openrouter" {
		t.Errorf("default_provider = %q", loaded.DefaultProvider)
	}
	if p := loaded.Providers["openrouter"]; p.APIKey != "sk-or-123" || p.Model != "some/model" {
		t.Errorf("openrouter = %+v", p)
	}
}

func TestSetSettingRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Load(path)

	if err := setSetting(path, cfg, []string{"provider", "anthropic"}); err == nil {
		t.Fatal("expected error for provider outside the closed set")
	}
	if err := setSetting(path, cfg, []string{"api_key", "nope", "key"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if err := setSetting(path, cfg, []string{"api_key", "gemini"}); err == nil {
		t.Fatal("expected usage error without a key value")
	}
}
