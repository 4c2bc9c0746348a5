package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
wallet:
  address: "wallet1"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != ":8000" {
		t.Errorf("Server.Port = %q, want :8000", cfg.Server.Port)
	}
	if cfg.Providers.Helius.BaseURL != "https://api.helius.xyz" {
		t.Errorf("Helius.BaseURL = %q", cfg.Providers.Helius.BaseURL)
	}
	if cfg.Providers.Helius.RequestTimeoutMillis != 10000 {
		t.Errorf("Helius.RequestTimeoutMillis = %d, want 10000", cfg.Providers.Helius.RequestTimeoutMillis)
	}
	if cfg.Monitor.ProfitWindow != 5 {
		t.Errorf("Monitor.ProfitWindow = %d, want 5", cfg.Monitor.ProfitWindow)
	}
	if cfg.Monitor.HistorySize != 100 {
		t.Errorf("Monitor.HistorySize = %d, want 100", cfg.Monitor.HistorySize)
	}
	if cfg.Cache.EnvelopeTTLSeconds != 30 {
		t.Errorf("Cache.EnvelopeTTLSeconds = %d, want 30", cfg.Cache.EnvelopeTTLSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9000"
wallet:
  address: "wallet1"
providers:
  helius:
    baseURL: "http://localhost:1234"
    apiKey: "k"
monitor:
  profitWindow: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != ":9000" {
		t.Errorf("Server.Port = %q, want :9000", cfg.Server.Port)
	}
	if cfg.Providers.Helius.BaseURL != "http://localhost:1234" {
		t.Errorf("Helius.BaseURL = %q", cfg.Providers.Helius.BaseURL)
	}
	if cfg.Providers.Helius.APIKey != "k" {
		t.Errorf("Helius.APIKey = %q", cfg.Providers.Helius.APIKey)
	}
	if cfg.Monitor.ProfitWindow != 3 {
		t.Errorf("Monitor.ProfitWindow = %d, want 3", cfg.Monitor.ProfitWindow)
	}
}

func TestLoadConfigMissingWallet(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9000"
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for missing wallet.address, got nil")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
