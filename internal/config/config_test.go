package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deptcal.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Database != "deptcal.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
	if cfg.Timezone != "Australia/Canberra" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.Export.Width != 1200 || cfg.Export.Height != 900 {
		t.Errorf("Export = %+v", cfg.Export)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deptcal.yaml")

	cfg := DefaultConfig()
	cfg.Listen = "0.0.0.0:9090"
	cfg.Telegram = &TelegramConfig{ChatID: 42, DailyAgenda: "08:30"}
	cfg.BasicAuth = &BasicAuthConfig{Username: "admin", Password: "secret"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Listen != "0.0.0.0:9090" {
		t.Errorf("Listen = %q", loaded.Listen)
	}
	if loaded.Telegram == nil || loaded.Telegram.ChatID != 42 || loaded.Telegram.DailyAgenda != "08:30" {
		t.Errorf("Telegram = %+v", loaded.Telegram)
	}
	if loaded.BasicAuth == nil || loaded.BasicAuth.Username != "admin" {
		t.Errorf("BasicAuth = %+v", loaded.BasicAuth)
	}
}

func TestNormalizeFillsPartialConfig(t *testing.T) {
	cfg := &Config{Listen: ":3000"}
	cfg.Normalize()

	if cfg.Listen != ":3000" {
		t.Errorf("Listen overwritten to %q", cfg.Listen)
	}
	if cfg.Database != "deptcal.db" || cfg.Timezone != "Australia/Canberra" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
	if cfg.Export.Width != 1200 || cfg.Export.OutputDir != "." {
		t.Errorf("export defaults not filled: %+v", cfg.Export)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "1234")
	t.Setenv("DATABASE_URL", "/tmp/env.db")

	path := filepath.Join(t.TempDir(), "deptcal.yaml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram == nil || cfg.Telegram.Token != "env-token" || cfg.Telegram.ChatID != 1234 {
		t.Errorf("Telegram env override missing: %+v", cfg.Telegram)
	}
	if cfg.Database != "/tmp/env.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
}

func TestSaveRejectsNil(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "x.yaml"), nil); err == nil {
		t.Error("expected error for nil config")
	}
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("expected error for empty path")
	}
}
