// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Storage   StorageConfig   `koanf:"storage"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// StorageConfig locates the data files.
type StorageConfig struct {
	// MoviesPath is the catalog file (id,title,genre,year,rating).
	// Default: data/movies.csv
	MoviesPath string `koanf:"movies_path" validate:"required,trimmed,singleline"`

	// UsersPath is the users file, rewritten after every change.
	// Default: data/users.csv
	UsersPath string `koanf:"users_path" validate:"required,trimmed,singleline"`

	// CreateMissingUsers starts with no accounts, and creates the users file,
	// when UsersPath does not exist. When false a missing users file is fatal.
	// Default: true
	CreateMissingUsers bool `koanf:"create_missing_users"`

	// SaveFailures is the number of consecutive failed saves after which
	// saving is suspended for SaveCooldown. 0 keeps retrying on every change.
	// Default: 3
	SaveFailures int `koanf:"save_failures" validate:"gte=0,lte=100"`

	// SaveCooldown is how long saving stays suspended before a trial save.
	// Default: 1m
	SaveCooldown time.Duration `koanf:"save_cooldown"`
}

// RecommendConfig holds recommendation defaults.
type RecommendConfig struct {
	// DefaultStrategy is used when the user picks none: genre, rating, or year.
	// Default: genre
	DefaultStrategy string `koanf:"default_strategy" validate:"required"`

	// DefaultCount is offered when the user gives no count.
	// It is still clamped to the account tier limit.
	// Default: 5
	DefaultCount int `koanf:"default_count" validate:"min=1,max=10"`
}

// SecurityConfig holds password and login settings.
type SecurityConfig struct {
	// BcryptCost is the cost for new password hashes.
	// Default: 10
	BcryptCost int `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`

	// LoginAttempts is the number of failed logins per username before
	// throttling. 0 disables throttling.
	// Default: 5
	LoginAttempts int `koanf:"login_attempts" validate:"gte=0"`

	// LoginWindow is how long a throttled username waits per extra attempt.
	// Default: 30s
	LoginWindow time.Duration `koanf:"login_window"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is where metrics are written on exit. Empty disables the export.
	Textfile string `koanf:"textfile" validate:"omitempty,trimmed,singleline"`
}
