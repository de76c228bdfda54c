// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package catalog

// Catalog maps movie IDs to movies and remembers load order.
// It is populated once while loading and only read afterwards.
type Catalog struct {
	index  map[string]int
	movies []Movie
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Put inserts a movie. A duplicate ID replaces the earlier value but keeps
// the earlier position, so catalog order stays the order IDs were first seen.
func (c *Catalog) Put(m Movie) {
	if i, ok := c.index[m.ID]; ok {
		c.movies[i] = m
		return
	}
	c.index[m.ID] = len(c.movies)
	c.movies = append(c.movies, m)
}

// Get returns the movie with the given ID.
func (c *Catalog) Get(id string) (Movie, bool) {
	i, ok := c.index[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Contains reports whether the ID is in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movies returns a copy of all movies in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}
