package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anthropics/teamforge/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9700" {
		t.Errorf("ListenAddr = %q, want :9700", cfg.ListenAddr)
	}
	if cfg.DefaultLang != "en" {
		t.Errorf("DefaultLang = %q, want en", cfg.DefaultLang)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `{"listen_addr": ":8080", "default_lang": "ru"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DefaultLang != "ru" {
		t.Errorf("DefaultLang = %q", cfg.DefaultLang)
	}
}

func TestLoad_InvalidLanguage(t *testing.T) {
	path := writeConfig(t, `{"default_lang": "de"}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	engErr, ok := err.(*domain.EngineError)
	if !ok {
		t.Fatalf("err type = %T, want *domain.EngineError", err)
	}
	if engErr.Code != domain.ErrConfigInvalid.Code {
		t.Errorf("code = %d, want %d", engErr.Code, domain.ErrConfigInvalid.Code)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ListenAddr == "" || cfg.DefaultLang == "" || cfg.CORSOrigin == "" {
		t.Errorf("Default left fields empty: %+v", cfg)
	}
}
