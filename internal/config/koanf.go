// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"cinetrack.yaml",
	"cinetrack.yml",
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CINETRACK_CONFIG"

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "CINETRACK_"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			MoviesPath:         "data/movies.csv",
			UsersPath:          "data/users.csv",
			CreateMissingUsers: true,
			SaveFailures:       3,
			SaveCooldown:       time.Minute,
		},
		Recommend: RecommendConfig{
			DefaultStrategy: "genre",
			DefaultCount:    5,
		},
		Security: SecurityConfig{
			BcryptCost:    10,
			LoginAttempts: 5,
			LoginWindow:   30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
	}
}

// Load loads configuration with layered sources:
//  1. Defaults: built-in values
//  2. Config File: optional YAML file
//  3. Environment Variables: CINETRACK_<SECTION>_<KEY>
//
// An explicit path must exist. With an empty path, CINETRACK_CONFIG and then
// DefaultConfigPaths are tried, and running without a file is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CINETRACK_STORAGE_USERS_PATH -> storage.users_path
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps an environment variable to a koanf path. The first
// underscore after the prefix separates the section from the key, so keys
// keep their own underscores:
//
//   - CINETRACK_STORAGE_USERS_PATH -> storage.users_path
//   - CINETRACK_SECURITY_BCRYPT_COST -> security.bcrypt_cost
//   - CINETRACK_CONFIG -> ignored (it names the file, not a setting)
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}
