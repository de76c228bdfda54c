// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package recommend

import (
	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
)

// profile summarizes the watch history of one account. History entries
// whose movie is not in the catalog are ignored.
type profile struct {
	favoriteGenre string
	hasGenre      bool

	meanYear int
	hasYear  bool
}

// buildProfile derives the favorite genre and mean release year.
// Genre ties go to the genre first seen while walking the history in order.
func buildProfile(h *account.History, cat *catalog.Catalog) profile {
	var (
		p        profile
		counts   = make(map[string]int)
		order    []string
		yearSum  int
		resolved int
	)

	for _, id := range h.IDs() {
		m, ok := cat.Get(id)
		if !ok {
			continue
		}
		resolved++
		yearSum += m.Year
		if _, seen := counts[m.Genre]; !seen {
			order = append(order, m.Genre)
		}
		counts[m.Genre]++
	}

	best := 0
	for _, g := range order {
		if counts[g] > best {
			best = counts[g]
			p.favoriteGenre = g
			p.hasGenre = true
		}
	}
	if resolved > 0 {
		p.meanYear = yearSum / resolved
		p.hasYear = true
	}
	return p
}
