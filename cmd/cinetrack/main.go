// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package main is the entry point for cinetrack, an interactive movie
watchlist tracker with personal recommendations.

# Application Architecture

Startup wires the core packages in order:
  - internal/config: koanf layered configuration (defaults, YAML file, environment)
  - internal/logging: zerolog global logger
  - internal/codec: catalog and users file loading and atomic saving
  - internal/recommend: ranking engine over the loaded catalog
  - internal/session: login state, mutations, and save-after-change

The menu in this package is a thin layer over session.Coordinator. Every
change the user makes is written to the users file immediately; the file is
saved once more on exit.

# Configuration

Configuration is read from cinetrack.yaml (or the file named by -config or
CINETRACK_CONFIG) and overridden by CINETRACK_* environment variables:
  - CINETRACK_STORAGE_MOVIES_PATH: catalog file (default: data/movies.csv)
  - CINETRACK_STORAGE_USERS_PATH: users file (default: data/users.csv)
  - CINETRACK_STORAGE_SAVE_FAILURES: failed saves before saving is suspended (0 disables)
  - CINETRACK_RECOMMEND_DEFAULT_STRATEGY: genre, rating, or year
  - CINETRACK_SECURITY_LOGIN_ATTEMPTS: failed logins before throttling
  - CINETRACK_LOGGING_LEVEL: trace, debug, info, warn, error
  - CINETRACK_METRICS_TEXTFILE: Prometheus textfile written on exit

# Example Usage

	cinetrack -config ./cinetrack.yaml
	CINETRACK_LOGGING_FORMAT=json cinetrack -json
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/codec"
	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/recommend"
	"github.com/tomtom215/cinetrack/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	jsonOutput := flag.Bool("json", false, "print listings and recommendations as JSON")
	flag.Parse()

	os.Exit(run(*configPath, *jsonOutput))
}

func run(configPath string, jsonOutput bool) int {
	// Load configuration first to get logging settings
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := account.SetHashCost(cfg.Security.BcryptCost); err != nil {
		logging.Error().Err(err).Msg("Invalid bcrypt cost")
		return 1
	}

	store := codec.NewStore(cfg.Storage.MoviesPath, cfg.Storage.UsersPath, logging.Component("codec"))
	store.CreateMissingUsers = cfg.Storage.CreateMissingUsers

	cat, err := store.LoadCatalog()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load movie catalog")
		return 1
	}
	accounts, err := store.LoadAccounts()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load accounts")
		return 1
	}
	metrics.SetDataSizes(cat.Len(), accounts.Len())

	logging.Info().
		Str("movies_path", store.MoviesPath()).
		Str("users_path", store.UsersPath()).
		Int("movies", cat.Len()).
		Int("accounts", accounts.Len()).
		Msg("Data loaded")

	engine, err := recommend.NewEngine(cat, &recommend.Config{
		DefaultStrategy: cfg.Strategy(),
		DefaultCount:    cfg.Recommend.DefaultCount,
	}, logging.Component("recommend"))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create recommendation engine")
		return 1
	}

	var saver session.Saver = store
	if cfg.Storage.SaveFailures > 0 {
		saver = codec.NewBreakerSaver(store, codec.BreakerConfig{
			Failures: uint32(cfg.Storage.SaveFailures), //nolint:gosec // bounded by config validation
			Cooldown: cfg.Storage.SaveCooldown,
		}, logging.Component("save-breaker"))
	}

	coord, err := session.New(cat, accounts, saver, engine, session.Config{
		LoginAttempts: cfg.Security.LoginAttempts,
		LoginWindow:   cfg.Security.LoginWindow,
	}, logging.Component("session"))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create session coordinator")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := newMenu(coord, os.Stdin, os.Stdout, menuOptions{
		JSON:            jsonOutput,
		DefaultCount:    cfg.Recommend.DefaultCount,
		DefaultStrategy: cfg.Strategy(),
	})
	runErr := m.run(ctx)

	status := 0
	if runErr != nil {
		logging.Error().Err(runErr).Msg("Menu stopped")
		status = 1
	}
	if err := coord.Close(); err != nil {
		logging.Error().Err(err).Msg("Failed to save accounts on exit")
		status = 1
	}
	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logging.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics textfile")
		}
	}

	logging.Info().Msg("Goodbye")
	return status
}
