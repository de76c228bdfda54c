// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import "errors"

// Domain outcomes reported to the session layer. Callers match them with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrEmptyField         = errors.New("required field is empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWatchlistFull      = errors.New("watchlist limit reached for account tier")
	ErrAlreadyListed      = errors.New("movie is already in the watchlist")
	ErrAlreadyWatched     = errors.New("movie is already in the watch history")
	ErrNotListed          = errors.New("movie is not in the watchlist")
)
