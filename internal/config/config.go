package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TelegramConfig enables the optional Telegram agenda surface.
type TelegramConfig struct {
	// Token is the bot token. The TELEGRAM_TOKEN environment variable takes
	// precedence so the secret can stay out of the config file.
	Token string `yaml:"token"`
	// ChatID is the chat the daily agenda is posted to.
	ChatID int64 `yaml:"chat_id"`
	// DailyAgenda is an HH:MM local time for the daily agenda post. Empty
	// disables the post.
	DailyAgenda string `yaml:"daily_agenda"`
}

// ExportConfig controls the calendar image export.
type ExportConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	OutputDir string `yaml:"output_dir"`
}

// BasicAuthConfig holds HTTP Basic Auth credentials for the web surface.
type BasicAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// Database is the SQLite DSN.
	Database string `yaml:"database"`

	// Timezone is the IANA timezone the calendar operates in.
	Timezone string `yaml:"timezone"`

	Telegram *TelegramConfig `yaml:"telegram,omitempty"`
	Export   ExportConfig    `yaml:"export"`

	// BasicAuth, if non-nil, protects all endpoints except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty"`

	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		Database: "deptcal.db",
		Timezone: "Australia/Canberra",
		Export: ExportConfig{
			Width:     1200,
			Height:    900,
			OutputDir: ".",
		},
	}
}

// Normalize fills in missing values so partially-filled config files still
// behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.Database == "" {
		c.Database = "deptcal.db"
	}
	if c.Timezone == "" {
		c.Timezone = "Australia/Canberra"
	}
	if c.Export.Width <= 0 {
		c.Export.Width = 1200
	}
	if c.Export.Height <= 0 {
		c.Export.Height = 900
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "."
	}
}

// applyEnv lets environment variables override file values. Secrets come
// from the environment first.
func (c *Config) applyEnv() {
	if token := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); token != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.Token = token
	}
	if chat := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); chat != "" {
		if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
			if c.Telegram == nil {
				c.Telegram = &TelegramConfig{}
			}
			c.Telegram.ChatID = id
		}
	}
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		c.Database = dsn
	}
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			cfg.applyEnv()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	cfg.applyEnv()

	return &cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".deptcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
