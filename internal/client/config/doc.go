// Package config loads runtime configuration for the RideShareX terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. RIDESHAREX_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-p int      profile picture size limit (bytes)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8081",
//	  "database_path": "ridesharex.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "profile_picture_max_bytes": 5242880,
//	  "log_level": "info",
//	  "seed_demo_data": true
//	}
package config
