// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package recommend

import (
	"cmp"
	"slices"

	"github.com/tomtom215/cinetrack/internal/catalog"
)

// ranker orders candidates (already filtered, in catalog order) and returns
// at most k of them.
type ranker func(p profile, candidates []catalog.Movie, k int) []catalog.Movie

// rankers maps each selectable strategy to its ranking.
var rankers = map[Strategy]ranker{
	StrategyGenre:  rankByGenre,
	StrategyRating: rankByRating,
	StrategyYear:   rankByYear,
}

// rankByRating sorts by rating, highest first. Equal ratings keep catalog order.
func rankByRating(_ profile, candidates []catalog.Movie, k int) []catalog.Movie {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, byRatingDesc)
	return head(ranked, k)
}

// rankByGenre puts the favorite genre first, rating ordered, then pads with
// the rest of the candidates by rating. Without a favorite genre it is
// rankByRating.
func rankByGenre(p profile, candidates []catalog.Movie, k int) []catalog.Movie {
	if !p.hasGenre {
		return rankByRating(p, candidates, k)
	}

	var favorite, rest []catalog.Movie
	for _, m := range candidates {
		if m.Genre == p.favoriteGenre {
			favorite = append(favorite, m)
		} else {
			rest = append(rest, m)
		}
	}

	picked := rankByRating(p, favorite, k)
	if len(picked) < k {
		picked = append(picked, rankByRating(p, rest, k-len(picked))...)
	}
	return picked
}

// rankByYear sorts by distance from the mean watched year, then rating,
// then catalog order. Without a resolvable history it is rankByRating.
func rankByYear(p profile, candidates []catalog.Movie, k int) []catalog.Movie {
	if !p.hasYear {
		return rankByRating(p, candidates, k)
	}

	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b catalog.Movie) int {
		if c := cmp.Compare(yearDistance(a.Year, p.meanYear), yearDistance(b.Year, p.meanYear)); c != 0 {
			return c
		}
		return byRatingDesc(a, b)
	})
	return head(ranked, k)
}

func byRatingDesc(a, b catalog.Movie) int {
	return cmp.Compare(b.Rating, a.Rating)
}

func yearDistance(year, mean int) int {
	if year > mean {
		return year - mean
	}
	return mean - year
}

func head(movies []catalog.Movie, k int) []catalog.Movie {
	if len(movies) > k {
		return movies[:k]
	}
	return movies
}
