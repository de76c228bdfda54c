// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"slices"
	"strings"
)

// listSeparator joins watchlist IDs and history pairs in a record field.
const listSeparator = ";"

// Watchlist is an ordered, duplicate-free list of movie IDs.
type Watchlist struct {
	ids []string
}

// NewWatchlist creates a watchlist holding the given IDs in order.
// Blank and repeated IDs are ignored.
func NewWatchlist(ids ...string) *Watchlist {
	w := &Watchlist{}
	for _, id := range ids {
		w.Add(id)
	}
	return w
}

// ParseWatchlist decodes the `id;id;id` field encoding.
func ParseWatchlist(field string) *Watchlist {
	if strings.TrimSpace(field) == "" {
		return NewWatchlist()
	}
	return NewWatchlist(strings.Split(field, listSeparator)...)
}

// Add appends an ID. It returns false for a blank or already present ID.
func (w *Watchlist) Add(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || w.Contains(id) {
		return false
	}
	w.ids = append(w.ids, id)
	return true
}

// Remove deletes an ID and reports whether it was present.
func (w *Watchlist) Remove(id string) bool {
	i := slices.Index(w.ids, strings.TrimSpace(id))
	if i < 0 {
		return false
	}
	w.ids = slices.Delete(w.ids, i, i+1)
	return true
}

// Contains reports whether the ID is listed.
func (w *Watchlist) Contains(id string) bool {
	return slices.Contains(w.ids, strings.TrimSpace(id))
}

// IDs returns a copy of the listed IDs in insertion order.
func (w *Watchlist) IDs() []string {
	return slices.Clone(w.ids)
}

// Len returns the number of listed IDs.
func (w *Watchlist) Len() int {
	return len(w.ids)
}

// String returns the field encoding: IDs joined with ';', empty when the list is empty.
func (w *Watchlist) String() string {
	return strings.Join(w.ids, listSeparator)
}
