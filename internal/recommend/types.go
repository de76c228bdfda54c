// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package recommend

import (
	"errors"
	"strings"
	"time"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
)

// ErrNoAccount is returned when a request carries no account.
var ErrNoAccount = errors.New("recommendation request has no account")

// Strategy selects how candidate movies are ranked.
type Strategy int

const (
	// StrategyDefault asks the engine for its configured default strategy.
	StrategyDefault Strategy = iota
	// StrategyGenre favors the genre watched most often.
	StrategyGenre
	// StrategyRating ranks purely by rating.
	StrategyRating
	// StrategyYear favors release years close to the average watched year.
	StrategyYear
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyGenre:
		return "genre"
	case StrategyRating:
		return "rating"
	case StrategyYear:
		return "year"
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStrategy maps a strategy name to a Strategy. Names are trimmed and
// case-insensitive; "top-rated" and "era" are accepted as aliases. Unknown
// names return StrategyDefault and false.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "genre", "genre-affinity":
		return StrategyGenre, true
	case "rating", "top-rated":
		return StrategyRating, true
	case "year", "era", "year-affinity":
		return StrategyYear, true
	default:
		return StrategyDefault, false
	}
}

// Strategies lists the selectable strategies in menu order.
func Strategies() []Strategy {
	return []Strategy{StrategyGenre, StrategyRating, StrategyYear}
}

// Tier reports which step of the fallback chain produced a response.
type Tier int

const (
	// TierPrimary results exclude both watchlist and history.
	TierPrimary Tier = iota
	// TierWatchlistRelaxed results may include watchlist movies but never watched ones.
	TierWatchlistRelaxed
	// TierCatalog results are the head of the catalog with no exclusions.
	TierCatalog
)

// String returns the metric label of the tier.
func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierWatchlistRelaxed:
		return "watchlist_relaxed"
	case TierCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Request is one recommendation request.
type Request struct {
	// Account is the user to recommend for. Required.
	Account *account.Account

	// Count is the number of movies wanted. It is clamped to
	// [1, Account.RecommendationLimit()].
	Count int

	// Strategy selects the ranking. StrategyDefault uses the engine default.
	Strategy Strategy

	// RequestID is generated when empty.
	RequestID string
}

// Response is the ranked result of a Request.
type Response struct {
	// Movies are the recommendations, best first.
	Movies []catalog.Movie `json:"movies"`

	// Strategy is the strategy that was applied after defaults.
	Strategy Strategy `json:"strategy"`

	// Tier is the fallback step that produced Movies.
	Tier Tier `json:"tier"`

	// Requested is the count asked for before clamping.
	Requested int `json:"requested"`

	// Effective is the count after clamping to the account's tier limit.
	Effective int `json:"effective"`

	// Candidates is the number of movies left after exclusions in the
	// tier that answered.
	Candidates int `json:"candidates"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains request tracing information.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Username  string    `json:"username"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}
