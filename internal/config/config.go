package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ProjectConfig struct {
	Project   string          `yaml:"project"`
	Version   int             `yaml:"version"`
	Database  DatabaseConfig  `yaml:"database"`
	Assistant AssistantConfig `yaml:"assistant"`
	Seed      SeedConfig      `yaml:"seed"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type AssistantConfig struct {
	Model       string  `yaml:"model"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Temperature float64 `yaml:"temperature"`
}

// SeedConfig sizes the procedurally generated collections loaded on first
// open. The fixed fixtures (tasks, announcements, documents, feedback) are
// not configurable.
type SeedConfig struct {
	Consultants int `yaml:"consultants"`
	Engagements int `yaml:"engagements"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = "gemini-2.5-flash"
	}
	if cfg.Assistant.APIKeyEnv == "" {
		cfg.Assistant.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Assistant.Temperature == 0 {
		cfg.Assistant.Temperature = 0.7
	}
	if cfg.Seed.Consultants == 0 {
		cfg.Seed.Consultants = 100
	}
	if cfg.Seed.Engagements == 0 {
		cfg.Seed.Engagements = 50
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	if !strings.HasPrefix(cfg.Database.DSN, "sqlite://") &&
		!strings.HasPrefix(cfg.Database.DSN, "postgres://") &&
		!strings.HasPrefix(cfg.Database.DSN, "postgresql://") {
		return fmt.Errorf("unsupported database dsn scheme: %s", cfg.Database.DSN)
	}
	if cfg.Assistant.Temperature < 0 || cfg.Assistant.Temperature > 2 {
		return fmt.Errorf("assistant temperature must be between 0 and 2")
	}
	if cfg.Seed.Consultants < 0 || cfg.Seed.Engagements < 0 {
		return fmt.Errorf("seed counts must not be negative")
	}
	return nil
}
