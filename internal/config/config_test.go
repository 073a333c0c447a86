package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfiguration(t *testing.T) {
	content := `server:
  address: ":9090"
  corsOrigins:
    - "http://localhost:5173"
database:
  host: "db.internal"
  user: "calcconstru"
  password: "secret"
  name: "feasibility"
advisor:
  apiKey: "test-key"
logging:
  level: "debug"
  format: "console"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q, expected :9090", cfg.Server.Address)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("Server.CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Database.Enabled() {
		t.Error("database with a host should be enabled")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port default = %d, expected 5432", cfg.Database.Port)
	}
	if cfg.Advisor.Model == "" || cfg.Advisor.Endpoint == "" {
		t.Error("advisor defaults were not applied")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Address == "" {
		t.Error("Default() should set a listen address")
	}
	if cfg.Database.Enabled() {
		t.Error("Default() should not enable the database")
	}
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "calc", SSLMode: "disable"}
	expected := "postgres://u:p@localhost:5432/calc?sslmode=disable"
	if got := db.DSN(); got != expected {
		t.Errorf("DSN() = %q, expected %q", got, expected)
	}
}
