package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ifti227i/RideShareX/internal/flagx"
	"github.com/ifti227i/RideShareX/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent fields keep the
// values already in Config.
type JsonConfig struct {
	APIBaseURL             string         `json:"api_base_url"`
	DatabasePath           string         `json:"database_path"`
	RequestTimeout         timex.Duration `json:"request_timeout"`
	OnlineCheckInterval    timex.Duration `json:"online_check_interval"`
	ProfilePictureMaxBytes int64          `json:"profile_picture_max_bytes"`
	LogLevel               string         `json:"log_level"`
	SeedDemoData           *bool          `json:"seed_demo_data"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.ProfilePictureMaxBytes != 0 {
		cfg.ProfilePictureMaxBytes = jc.ProfilePictureMaxBytes
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	return nil
}
