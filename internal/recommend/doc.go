// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package recommend ranks catalog movies for an account.
//
// # Strategies
//
//   - genre: the genre watched most often comes first (ties go to the genre
//     seen first in the history), rating ordered, padded with the best rated
//     movies of other genres.
//   - rating: best rated first.
//   - year: closest to the mean release year of the history first, then by
//     rating.
//
// Genre and year fall back to rating when the history has no movie that is
// in the catalog. Every ordering is stable on catalog order, so the same
// inputs always give the same output.
//
// # Exclusions and Fallback
//
// Movies on the watchlist or in the history are never recommended, unless
// nothing else is left:
//
//	TierPrimary           exclude watchlist and history
//	TierWatchlistRelaxed  exclude history only
//	TierCatalog           first movies of the catalog, nothing excluded
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Account:  acct,
//	    Count:    5,
//	    Strategy: recommend.StrategyGenre,
//	})
//
// Count is clamped to [1, RecommendationLimit] of the account tier.
package recommend
