// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/codr1/tintkit/internal/models"
)

const defaultSeedEnv = "TINTKIT_DEFAULT_SEED"

type ThemeConfig struct {
	DefaultSeed string `yaml:"default_seed"`
	CSSPrefix   string `yaml:"css_prefix"`
}

type CacheConfig struct {
	Size int `yaml:"size"`
	// Cron expression for the cache warmer; empty disables warming.
	WarmSchedule string `yaml:"warm_schedule"`
}

type RateLimitConfig struct {
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	TrustProxy        bool `yaml:"trust_proxy"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Theme     ThemeConfig     `yaml:"theme"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Default returns a configuration usable without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "tintkit"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Theme.DefaultSeed = models.DefaultSeed
	cfg.Cache.Size = 256
	cfg.Cache.WarmSchedule = "*/30 * * * *"
	cfg.RateLimit.RequestsPerMinute = 120
	return cfg
}

// Load loads both .env and yaml configuration. Values missing from the
// file keep their defaults.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return finish(cfg)
}

// LoadDefault is Default with environment overrides applied, for running
// without a config file.
func LoadDefault() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	if seed := os.Getenv(defaultSeedEnv); seed != "" {
		cfg.Theme.DefaultSeed = seed
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	if !models.IsHexColor(c.Theme.DefaultSeed) {
		return fmt.Errorf("theme default_seed must be a 6-digit hex color like #AABBCC")
	}
	if c.Theme.CSSPrefix != "" && !models.IsCSSPrefix(c.Theme.CSSPrefix) {
		return fmt.Errorf("theme css_prefix must match [a-z][a-z0-9-]*")
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache size must be positive")
	}
	if c.Cache.WarmSchedule != "" {
		if _, err := cron.ParseStandard(c.Cache.WarmSchedule); err != nil {
			return fmt.Errorf("cache warm_schedule: %w", err)
		}
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit requests_per_minute must not be negative")
	}
	return nil
}
