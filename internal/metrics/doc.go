// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package metrics provides Prometheus instrumentation for cinetrack.

cinetrack is an interactive tool, not a server, so nothing is scraped. When
metrics.textfile is configured, the registry is written once on exit in the
Prometheus text format so a node_exporter textfile collector can pick it up.

# Available Metrics

Recommendations:
  - cinetrack_recommendations_total: requests (counter)
    Labels: strategy, tier
  - cinetrack_recommendation_duration_seconds: ranking time (histogram)
    Labels: strategy
  - cinetrack_recommended_movies: movies returned per request (histogram)

Session:
  - cinetrack_logins_total: login attempts (counter)
    Labels: outcome (success, rejected, throttled)
  - cinetrack_registrations_total: registrations (counter)
    Labels: outcome
  - cinetrack_mutations_total: watchlist and history changes (counter)
    Labels: operation, outcome

Storage:
  - cinetrack_saves_total: users file rewrites (counter)
    Labels: outcome
  - cinetrack_save_duration_seconds: rewrite time (histogram)
  - cinetrack_catalog_movies, cinetrack_accounts: loaded data sizes (gauges)

# Usage

	start := time.Now()
	err := store.SaveAccounts(set)
	metrics.RecordSave(time.Since(start), err)
*/
package metrics
