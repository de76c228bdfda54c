// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package account models users and their viewing state.

An Account owns exactly one Watchlist (movies to watch later) and one History
(movies already watched, each with the day it was watched). The two are kept
disjoint: marking a movie watched moves it out of the watchlist, and a watched
movie cannot be listed again.

# Tiers

	Role         Watchlist   Recommendations per request
	BASIC        10          5
	PREMIUM      unlimited   10

# Credentials

New passwords are hashed with bcrypt (see SetHashCost). Accounts restored
from older users files may carry a legacy hex digest; it is still accepted by
VerifyPassword and NeedsRehash reports it so the caller can replace it with a
bcrypt hash after a successful login. A stored value that is neither is
treated as a plaintext seed and hashed when the account is restored.

# Errors

Mutations return the sentinel errors in errors.go and never panic:

	if err := acct.AddToWatchlist("M1"); errors.Is(err, account.ErrWatchlistFull) {
		// tell the user to upgrade
	}
*/
package account
