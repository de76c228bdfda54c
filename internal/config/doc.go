// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package config loads cinetrack configuration with Koanf v2.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:
  - Built-in defaults
  - A YAML file: the -config flag, else CINETRACK_CONFIG, else the first of
    cinetrack.yaml, cinetrack.yml, config.yaml, config.yml that exists
  - Environment variables prefixed with CINETRACK_

# Settings

	storage:
	  movies_path: data/movies.csv      # CINETRACK_STORAGE_MOVIES_PATH
	  users_path: data/users.csv        # CINETRACK_STORAGE_USERS_PATH
	  create_missing_users: true        # CINETRACK_STORAGE_CREATE_MISSING_USERS
	recommend:
	  default_strategy: genre           # genre, rating, year
	  default_count: 5                  # 1-10, clamped to the account tier
	security:
	  bcrypt_cost: 10                   # 4-31
	  login_attempts: 5                 # 0 disables login throttling
	  login_window: 30s
	logging:
	  level: info
	  format: console                   # or json
	  caller: false
	metrics:
	  textfile: ""                      # e.g. /var/lib/node_exporter/cinetrack.prom

# Usage

	cfg, err := config.Load(*configPath)
	if err != nil {
	    logging.Error().Err(err).Msg("Failed to load configuration")
	    return 1
	}
*/
package config
