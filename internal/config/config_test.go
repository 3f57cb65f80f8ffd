package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads with defaults", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\ndatabase:\n  dsn: sqlite://portal.db\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "nexus" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Assistant.Model != "gemini-2.5-flash" {
			t.Errorf("default model = %q", cfg.Assistant.Model)
		}
		if cfg.Assistant.APIKeyEnv != "GEMINI_API_KEY" {
			t.Errorf("default api key env = %q", cfg.Assistant.APIKeyEnv)
		}
		if cfg.Assistant.Temperature != 0.7 {
			t.Errorf("default temperature = %v", cfg.Assistant.Temperature)
		}
		if cfg.Seed.Consultants != 100 || cfg.Seed.Engagements != 50 {
			t.Errorf("default seed counts = %d/%d", cfg.Seed.Consultants, cfg.Seed.Engagements)
		}
	})

	t.Run("postgres dsn accepted", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\ndatabase:\n  dsn: postgres://localhost:5432/portal\n")
		if _, err := LoadProjectConfig(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\ndatabase:\n  dsn: sqlite://portal.db\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 2\ndatabase:\n  dsn: sqlite://portal.db\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported dsn scheme", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\ndatabase:\n  dsn: mysql://localhost/portal\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("temperature out of range", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\ndatabase:\n  dsn: sqlite://portal.db\nassistant:\n  temperature: 3\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative seed count", func(t *testing.T) {
		path := writeTempConfig(t, "project: nexus\nversion: 1\ndatabase:\n  dsn: sqlite://portal.db\nseed:\n  consultants: -1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
