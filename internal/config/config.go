package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// LocalConfigName is the per-project config file picked up from the working
// directory or any of its parents.
const LocalConfigName = ".jules.toml"

// Config holds all application configuration
type Config struct {
	General       GeneralConfig       `toml:"general"`
	API           APIConfig           `toml:"api"`
	Schedules     SchedulesConfig     `toml:"schedules"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	EnvFile string `toml:"env_file"`
}

// APIConfig holds Jules API settings
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// SchedulesConfig holds defaults for the schedules report.
// MaxPages and MaxSourcePages bound the pagination loops in case the server
// keeps returning a continuation token.
type SchedulesConfig struct {
	Repo           string             `toml:"repo"`
	PageSize       int                `toml:"page_size"`
	MaxPages       int                `toml:"max_pages"`
	SourcePageSize int                `toml:"source_page_size"`
	MaxSourcePages int                `toml:"max_source_pages"`
	Declared       []DeclaredSchedule `toml:"declared"`
}

// NotificationsConfig holds notification settings
type NotificationsConfig struct {
	SlackWebhook string `toml:"slack_webhook"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			EnvFile: ".env",
		},
		API: APIConfig{
			BaseURL:        "https://jules.googleapis.com/v1alpha",
			TimeoutSeconds: 30,
		},
		Schedules: SchedulesConfig{
			Repo:           "OWNER/REPO",
			PageSize:       50,
			MaxPages:       40,
			SourcePageSize: 100,
			MaxSourcePages: 10,
		},
	}
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Validate checks that numeric limits are usable and that every declared
// schedule has a name, a title and a parseable cron expression.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	limits := []struct {
		name  string
		value int
	}{
		{"schedules.page_size", c.Schedules.PageSize},
		{"schedules.max_pages", c.Schedules.MaxPages},
		{"schedules.source_page_size", c.Schedules.SourcePageSize},
		{"schedules.max_source_pages", c.Schedules.MaxSourcePages},
	}
	for _, l := range limits {
		if l.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", l.name, l.value)
		}
	}
	for i := range c.Schedules.Declared {
		if err := c.Schedules.Declared[i].Validate(); err != nil {
			return fmt.Errorf("schedules.declared[%d]: %w", i, err)
		}
	}
	return nil
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.General.EnvFile = ExpandPath(cfg.General.EnvFile)
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadWithLocalFallback loads the explicit path if given, otherwise the
// nearest local config, otherwise the user config.
func LoadWithLocalFallback(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if local := FindLocalConfig(); local != "" {
		return Load(local)
	}
	return Load(DefaultConfigPath())
}

// FindLocalConfig walks up from the working directory looking for
// LocalConfigName. It returns "" if none is found.
func FindLocalConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, LocalConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "jules", "config.toml")
}
