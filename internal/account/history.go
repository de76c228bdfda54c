// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for watched dates.
const DateLayout = "2006-01-02"

// pairSeparator splits a history pair into movie ID and date.
const pairSeparator = "@"

// HistoryEntry records that a movie was watched on a given day.
type HistoryEntry struct {
	MovieID   string    `json:"movie_id"`
	WatchedOn time.Time `json:"-"`
}

// Date returns the watched day in YYYY-MM-DD form.
func (e HistoryEntry) Date() string {
	return e.WatchedOn.Format(DateLayout)
}

// History is the ordered watch history, one entry per movie.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// ParseHistory decodes the `id@YYYY-MM-DD;...` field encoding. Malformed
// pairs are dropped; the returned error joins one error per dropped pair and
// is nil when every pair parsed.
func ParseHistory(field string) (*History, error) {
	h := NewHistory()
	if strings.TrimSpace(field) == "" {
		return h, nil
	}

	var errs []error
	for _, pair := range strings.Split(field, listSeparator) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, date, ok := strings.Cut(pair, pairSeparator)
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			errs = append(errs, fmt.Errorf("history entry %q: want id@date", pair))
			continue
		}
		day, err := ParseDate(date)
		if err != nil {
			errs = append(errs, fmt.Errorf("history entry %q: %w", pair, err))
			continue
		}
		h.Add(id, day)
	}
	return h, errors.Join(errs...)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Day truncates t to its calendar day (in t's location) and returns it as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Add records a watched movie. Re-adding an ID updates its date in place and
// returns false; a new ID is appended and returns true. Blank IDs are ignored.
func (h *History) Add(id string, on time.Time) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	on = Day(on)
	if i := h.index(id); i >= 0 {
		h.entries[i].WatchedOn = on
		return false
	}
	h.entries = append(h.entries, HistoryEntry{MovieID: id, WatchedOn: on})
	return true
}

// Contains reports whether the movie has been watched.
func (h *History) Contains(id string) bool {
	return h.index(id) >= 0
}

// WatchedOn returns the day the movie was watched.
func (h *History) WatchedOn(id string) (time.Time, bool) {
	i := h.index(id)
	if i < 0 {
		return time.Time{}, false
	}
	return h.entries[i].WatchedOn, true
}

// Entries returns a copy of the entries in insertion order.
func (h *History) Entries() []HistoryEntry {
	return slices.Clone(h.entries)
}

// IDs returns the watched movie IDs in insertion order.
func (h *History) IDs() []string {
	ids := make([]string, len(h.entries))
	for i, e := range h.entries {
		ids[i] = e.MovieID
	}
	return ids
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// String returns the field encoding: id@date pairs joined with ';'.
func (h *History) String() string {
	pairs := make([]string, len(h.entries))
	for i, e := range h.entries {
		pairs[i] = e.MovieID + pairSeparator + e.Date()
	}
	return strings.Join(pairs, listSeparator)
}

func (h *History) index(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(h.entries, func(e HistoryEntry) bool {
		return e.MovieID == id
	})
}
