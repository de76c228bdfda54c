// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a logged in account.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrUnknownMovie is returned when a movie ID is not in the catalog.
	ErrUnknownMovie = errors.New("movie not found in catalog")

	// ErrTooManyAttempts is returned while logins for a username are throttled.
	ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")

	// ErrInvalidInput is returned when a username, password, or date is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSaveFailed wraps a failed users file rewrite. The change that
	// triggered the save is kept in memory and is written by the next
	// successful save.
	ErrSaveFailed = errors.New("changes could not be saved")
)
