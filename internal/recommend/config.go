// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package recommend

import "fmt"

// Config contains the engine settings.
type Config struct {
	// DefaultStrategy is used when a request names none or an unknown one.
	DefaultStrategy Strategy

	// DefaultCount is what callers should ask for when the user gives no count.
	// The engine itself never substitutes it; Count <= 0 clamps to 1.
	DefaultCount int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultStrategy: StrategyGenre,
		DefaultCount:    5,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.DefaultStrategy {
	case StrategyGenre, StrategyRating, StrategyYear:
	default:
		return fmt.Errorf("default strategy %q is not selectable", c.DefaultStrategy)
	}
	if c.DefaultCount < 1 {
		return fmt.Errorf("default count must be at least 1, got %d", c.DefaultCount)
	}
	return nil
}
