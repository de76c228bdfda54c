// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package catalog

import (
	"fmt"
	"strings"
)

// Category is the derived classification of a movie.
// It is metadata for display only and does not affect ranking.
type Category int

const (
	// FeatureFilm is the default category.
	FeatureFilm Category = iota
	// ShortFilm covers animation and anything released before 1980.
	ShortFilm
)

// shortFilmCutoffYear is the first release year that is not automatically a short film.
const shortFilmCutoffYear = 1980

// String returns the persisted/display name of the category.
func (c Category) String() string {
	switch c {
	case ShortFilm:
		return "SHORT_FILM"
	case FeatureFilm:
		return "FEATURE_FILM"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries the name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Categorize derives the category of a movie from its genre and release year.
func Categorize(genre string, year int) Category {
	if strings.EqualFold(genre, "ANIMATION") || year < shortFilmCutoffYear {
		return ShortFilm
	}
	return FeatureFilm
}

// Movie is an immutable catalog record. Identity is the ID alone.
type Movie struct {
	// ID is the unique, case-sensitive catalog key.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Genre is a free-form label; genre affinity compares it exactly.
	Genre string `json:"genre"`

	// Year is the release year.
	Year int `json:"year"`

	// Rating is nominally 0.0-10.0; the range is not enforced.
	Rating float64 `json:"rating"`

	// Category is derived by NewMovie.
	Category Category `json:"category"`
}

// NewMovie builds a Movie and derives its category.
func NewMovie(id, title, genre string, year int, rating float64) Movie {
	return Movie{
		ID:       id,
		Title:    title,
		Genre:    genre,
		Year:     year,
		Rating:   rating,
		Category: Categorize(genre, year),
	}
}

// Equal reports whether two movies share an identifier.
func (m Movie) Equal(other Movie) bool {
	return m.ID == other.ID
}

// String renders the movie the way the menu lists it.
func (m Movie) String() string {
	return fmt.Sprintf("[%s] %s (%d) - %s | %s [Rating: %.1f]",
		m.ID, m.Title, m.Year, m.Genre, m.Category, m.Rating)
}
