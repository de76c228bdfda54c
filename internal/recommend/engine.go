// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/catalog"
	"github.com/tomtom215/cinetrack/internal/logging"
)

// Engine ranks catalog movies for an account. The catalog is read only, so
// an Engine is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog *catalog.Catalog
	logger  zerolog.Logger

	requestCount atomic.Int64
}

// NewEngine creates an engine over the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:  cfg,
		catalog: cat,
		logger:  logger,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// RequestCount returns the number of requests served.
func (e *Engine) RequestCount() int64 {
	return e.requestCount.Load()
}

// Recommend ranks movies for req.Account.
//
// Movies on the watchlist or in the history are excluded. When nothing is
// left, the same strategy is retried excluding only the history, and when
// that is empty too the first catalog movies are returned with no
// exclusions. The result is empty only for an empty catalog.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if req.Account == nil {
		return nil, ErrNoAccount
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)

	effective := clamp(req.Count, 1, req.Account.RecommendationLimit())
	rank := rankers[req.Strategy]
	p := buildProfile(req.Account.History(), e.catalog)
	movies := e.catalog.Movies()

	resp := &Response{
		Strategy:  req.Strategy,
		Requested: req.Count,
		Effective: effective,
	}

	primary := exclude(movies, req.Account.Watchlist().Contains, req.Account.History().Contains)
	resp.Tier, resp.Candidates, resp.Movies = TierPrimary, len(primary), rank(p, primary, effective)

	if len(resp.Movies) == 0 {
		relaxed := exclude(movies, req.Account.History().Contains)
		resp.Tier, resp.Candidates, resp.Movies = TierWatchlistRelaxed, len(relaxed), rank(p, relaxed, effective)
		logger.Debug().Int("candidates", len(relaxed)).Msg("no candidates outside watchlist and history, relaxing watchlist")
	}
	if len(resp.Movies) == 0 {
		resp.Tier, resp.Candidates, resp.Movies = TierCatalog, len(movies), head(movies, effective)
		logger.Debug().Int("candidates", len(movies)).Msg("everything watched, falling back to catalog order")
	}

	resp.Metadata = ResponseMetadata{
		RequestID: req.RequestID,
		Username:  req.Account.Username(),
		LatencyMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now(),
	}

	logger.Debug().
		Int("requested", req.Count).
		Int("effective", effective).
		Int("returned", len(resp.Movies)).
		Str("tier", resp.Tier.String()).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies the default strategy and generates a request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}
	if _, ok := rankers[req.Strategy]; !ok {
		req.Strategy = e.config.DefaultStrategy
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("username", req.Account.Username()).
		Str("strategy", req.Strategy.String()).
		Logger()
}

// exclude returns the movies for which no predicate matches, in catalog order.
func exclude(movies []catalog.Movie, excluded ...func(id string) bool) []catalog.Movie {
	out := make([]catalog.Movie, 0, len(movies))
next:
	for _, m := range movies {
		for _, is := range excluded {
			if is(m.ID) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
