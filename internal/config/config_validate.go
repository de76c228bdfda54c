// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package config

import (
	"fmt"

	"github.com/tomtom215/cinetrack/internal/recommend"
	"github.com/tomtom215/cinetrack/internal/validation"
)

// Validate checks field constraints and the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	return c.validateSecurity()
}

func (c *Config) validateStorage() error {
	if c.Storage.SaveFailures > 0 && c.Storage.SaveCooldown <= 0 {
		return fmt.Errorf("storage.save_cooldown must be positive when storage.save_failures is set")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if _, ok := recommend.ParseStrategy(c.Recommend.DefaultStrategy); !ok {
		return fmt.Errorf("recommend.default_strategy %q is not one of genre, rating, year", c.Recommend.DefaultStrategy)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.LoginAttempts > 0 && c.Security.LoginWindow <= 0 {
		return fmt.Errorf("security.login_window must be positive when security.login_attempts is set")
	}
	return nil
}

// Strategy returns the configured default strategy.
func (c *Config) Strategy() recommend.Strategy {
	s, _ := recommend.ParseStrategy(c.Recommend.DefaultStrategy)
	return s
}
