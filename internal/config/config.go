package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anthropics/teamforge/internal/domain"
)

// Config holds the runtime configuration for the serve command.
type Config struct {
	ListenAddr  string `json:"listen_addr"`
	DefaultLang string `json:"default_lang"`
	OutputDir   string `json:"output_dir"`
	CORSOrigin  string `json:"cors_origin"`
}

// Load reads a JSON config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":9700"
	}
	if c.DefaultLang == "" {
		c.DefaultLang = "en"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = "*"
	}
}

func (c *Config) validate() error {
	var problems []string

	if c.DefaultLang != "en" && c.DefaultLang != "ru" {
		problems = append(problems, fmt.Sprintf("default_lang must be en or ru, got %q", c.DefaultLang))
	}

	if len(problems) > 0 {
		return &domain.EngineError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
