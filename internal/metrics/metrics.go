// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the counters below.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeRejected  = "rejected"
	OutcomeThrottled = "throttled"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_recommendations_total",
			Help: "Total recommendation requests by strategy and the fallback tier that answered",
		},
		[]string{"strategy", "tier"}, // tier: "primary", "watchlist_relaxed", "catalog"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetrack_recommendation_duration_seconds",
			Help:    "Time spent ranking the catalog for one request",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"strategy"},
	)

	RecommendedMovies = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinetrack_recommended_movies",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	// Session Metrics
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"}, // "success", "rejected", "throttled"
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_registrations_total",
			Help: "Account registrations by outcome",
		},
		[]string{"outcome"},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_mutations_total",
			Help: "Watchlist and history changes by operation and outcome",
		},
		[]string{"operation", "outcome"}, // operation: "watchlist_add", "watchlist_remove", "mark_watched", ...
	)

	// Storage Metrics
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_saves_total",
			Help: "Users file rewrites by outcome",
		},
		[]string{"outcome"},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinetrack_save_duration_seconds",
			Help:    "Duration of users file rewrites",
			Buckets: prometheus.DefBuckets,
		},
	)

	SaveBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_save_breaker_state",
			Help: "Users file save breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	SaveBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_save_breaker_transitions_total",
			Help: "Users file save breaker state transitions",
		},
		[]string{"from", "to"},
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	Accounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_accounts",
			Help: "Number of known accounts",
		},
	)
)

// RecordRecommendation records one answered recommendation request.
func RecordRecommendation(strategy, tier string, returned int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(strategy, tier).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	RecommendedMovies.Observe(float64(returned))
}

// RecordLogin records a login attempt.
func RecordLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordRegistration records a registration attempt.
func RecordRegistration(err error) {
	RegistrationsTotal.WithLabelValues(outcomeOf(err)).Inc()
}

// RecordMutation records a watchlist or history change.
// Any error counts as rejected; the session has already reported it to the user.
func RecordMutation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeRejected
	}
	MutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordSave records a users file rewrite.
func RecordSave(duration time.Duration, err error) {
	SaveDuration.Observe(duration.Seconds())
	SavesTotal.WithLabelValues(outcomeOf(err)).Inc()
}

// RecordSaveBreakerTransition records a save breaker state change.
// state is the numeric value of the new state.
func RecordSaveBreakerTransition(from, to string, state float64) {
	SaveBreakerState.Set(state)
	SaveBreakerTransitions.WithLabelValues(from, to).Inc()
}

// SetDataSizes records the size of the loaded catalog and account set.
func SetDataSizes(movies, accounts int) {
	CatalogMovies.Set(float64(movies))
	Accounts.Set(float64(accounts))
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text format, for pickup by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
