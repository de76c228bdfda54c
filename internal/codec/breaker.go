// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/metrics"
)

// ErrSavesSuspended is returned while the save breaker is open. The change
// is still in memory and is written by the next save that gets through.
var ErrSavesSuspended = errors.New("saves suspended after repeated failures")

// AccountSaver writes the account set somewhere durable.
type AccountSaver interface {
	SaveAccounts(set *account.Set) error
}

// BreakerConfig controls when saves are suspended.
type BreakerConfig struct {
	// Failures is the number of consecutive failed saves that opens the breaker.
	Failures uint32

	// Cooldown is how long the breaker stays open before one trial save.
	Cooldown time.Duration
}

// BreakerSaver stops rewriting the users file after repeated failures, so a
// full or read-only disk is not hit on every change. Flush bypasses it.
type BreakerSaver struct {
	next   AccountSaver
	cb     *gobreaker.CircuitBreaker[struct{}]
	logger zerolog.Logger
}

// NewBreakerSaver wraps next with a circuit breaker.
//
// Breaker configuration:
//   - Opens after cfg.Failures consecutive failures
//   - Counts never reset while closed; a success clears the streak
//   - One trial save in half-open state after cfg.Cooldown
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerSaver(next AccountSaver, cfg BreakerConfig, logger zerolog.Logger) *BreakerSaver {
	b := &BreakerSaver{
		next:   next,
		logger: logger,
	}
	failures := cfg.Failures
	if failures == 0 {
		failures = 1
	}

	metrics.SaveBreakerState.Set(stateToFloat(gobreaker.StateClosed))
	b.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "users-file",
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("save breaker state transition")
			metrics.RecordSaveBreakerTransition(from.String(), to.String(), stateToFloat(to))
		},
	})
	return b
}

// SaveAccounts saves through the breaker.
func (b *BreakerSaver) SaveAccounts(set *account.Set) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.SaveAccounts(set)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrSavesSuspended, err)
	}
	return err
}

// Flush saves without consulting the breaker. It is used for the final
// write at shutdown.
func (b *BreakerSaver) Flush(set *account.Set) error {
	return b.next.SaveAccounts(set)
}

// State returns the breaker state name: closed, half-open, or open.
func (b *BreakerSaver) State() string {
	return b.cb.State().String()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
