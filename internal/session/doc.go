// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package session coordinates the one interactive user of a cinetrack process.

A Coordinator starts anonymous. Login or Register moves it to an
authenticated session for one account; Logout moves it back. Watchlist,
history, password, and tier changes need an authenticated session and
rewrite the users file after every successful change.

A failed save does not undo the change. The returned error wraps
ErrSaveFailed, the change stays in memory, and the next successful save
writes it:

	if err := coord.AddToWatchlist("M3"); session.IsSaveFailure(err) {
		fmt.Println("added, but not saved yet")
	}

Failed logins are throttled per username with a token bucket
(golang.org/x/time/rate): after security.login_attempts failures one more
attempt is allowed per security.login_window.
*/
package session
