package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the RideShareX terminal client.
//
// Units: RequestTimeout and OnlineCheckInterval are time.Duration values;
// ProfilePictureMaxBytes is a byte count.
type Config struct {
	APIBaseURL             string        `env:"RIDESHAREX_API_URL"`
	DatabasePath           string        `env:"RIDESHAREX_DB"`
	RequestTimeout         time.Duration `env:"RIDESHAREX_REQUEST_TIMEOUT"`
	OnlineCheckInterval    time.Duration `env:"RIDESHAREX_ONLINE_CHECK_INTERVAL"`
	ProfilePictureMaxBytes int64         `env:"RIDESHAREX_PICTURE_MAX_BYTES"`
	LogLevel               string        `env:"RIDESHAREX_LOG_LEVEL"`
	SeedDemoData           bool          `env:"RIDESHAREX_SEED_DEMO"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8081"
	c.DatabasePath = "ridesharex.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.ProfilePictureMaxBytes = 5 << 20
	c.LogLevel = "info"
	c.SeedDemoData = true
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIBaseURL)
	}
	if c.DatabasePath == "" {
		return errors.New("database path is empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	if c.ProfilePictureMaxBytes <= 0 {
		return errors.New("picture size limit must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
