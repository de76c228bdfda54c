// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package catalog holds the movie catalog: the Movie record, its derived
// Category, and the ordered, read-after-load Catalog.
//
// Catalog order (the order IDs first appear in the movies file) is the
// stable tie-break for every ranking in the recommend package, so the
// Catalog keeps it explicitly rather than relying on map iteration.
package catalog
