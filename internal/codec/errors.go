// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import "errors"

// ErrSourceUnavailable is wrapped by load errors when a data file is missing
// or cannot be read. Without it the program has nothing to work on.
var ErrSourceUnavailable = errors.New("data source unavailable")
