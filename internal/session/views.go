// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import (
	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
)

// Item is a watchlist or history entry resolved against the catalog.
// IDs missing from the catalog are kept with Known set to false.
type Item struct {
	ID        string         `json:"id"`
	Movie     *catalog.Movie `json:"movie,omitempty"`
	Known     bool           `json:"known"`
	WatchedOn string         `json:"watched_on,omitempty"`
}

// AccountSummary describes the current account without its credential.
type AccountSummary struct {
	Username            string `json:"username"`
	Role                string `json:"role"`
	WatchlistSize       int    `json:"watchlist_size"`
	WatchlistLimit      int    `json:"watchlist_limit,omitempty"`
	HistorySize         int    `json:"history_size"`
	RecommendationLimit int    `json:"recommendation_limit"`
}

func (c *Coordinator) resolve(id string) Item {
	item := Item{ID: id}
	if m, ok := c.catalog.Get(id); ok {
		item.Movie = &m
		item.Known = true
	}
	return item
}

// Watchlist returns the current account's watchlist in order.
func (c *Coordinator) Watchlist() ([]Item, error) {
	acct, err := c.requireAccount()
	if err != nil {
		return nil, err
	}
	ids := acct.Watchlist().IDs()
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = c.resolve(id)
	}
	return items, nil
}

// History returns the current account's watch history in order.
func (c *Coordinator) History() ([]Item, error) {
	acct, err := c.requireAccount()
	if err != nil {
		return nil, err
	}
	entries := acct.History().Entries()
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = c.resolve(e.MovieID)
		items[i].WatchedOn = e.Date()
	}
	return items, nil
}

// Summary describes the current account. WatchlistLimit is zero when unlimited.
func (c *Coordinator) Summary() (AccountSummary, error) {
	acct, err := c.requireAccount()
	if err != nil {
		return AccountSummary{}, err
	}
	s := AccountSummary{
		Username:            acct.Username(),
		Role:                acct.Role().String(),
		WatchlistSize:       acct.Watchlist().Len(),
		HistorySize:         acct.History().Len(),
		RecommendationLimit: acct.RecommendationLimit(),
	}
	if limit := acct.WatchlistLimit(); limit != account.Unlimited {
		s.WatchlistLimit = limit
	}
	return s, nil
}
