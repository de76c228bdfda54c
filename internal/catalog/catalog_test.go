// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package catalog

import (
	"testing"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		genre string
		year  int
		want  Category
	}{
		{name: "modern drama", genre: "Drama", year: 2010, want: FeatureFilm},
		{name: "animation upper", genre: "ANIMATION", year: 2015, want: ShortFilm},
		{name: "animation mixed case", genre: "Animation", year: 2015, want: ShortFilm},
		{name: "before cutoff", genre: "Western", year: 1979, want: ShortFilm},
		{name: "at cutoff", genre: "Western", year: 1980, want: FeatureFilm},
		{name: "animated is not animation", genre: "Animated", year: 2001, want: FeatureFilm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Categorize(tt.genre, tt.year); got != tt.want {
				t.Errorf("Categorize(%q, %d) = %v, want %v", tt.genre, tt.year, got, tt.want)
			}
		})
	}
}

func TestNewMovie(t *testing.T) {
	t.Parallel()

	m := NewMovie("M001", "Up", "Animation", 2009, 8.2)
	if m.Category != ShortFilm {
		t.Errorf("Category = %v, want %v", m.Category, ShortFilm)
	}
	if m.String() != "[M001] Up (2009) - Animation | SHORT_FILM [Rating: 8.2]" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestMovieEqual(t *testing.T) {
	t.Parallel()

	a := NewMovie("M1", "A", "Action", 2020, 8.5)
	b := NewMovie("M1", "Different title", "Drama", 1999, 1.0)
	c := NewMovie("M2", "A", "Action", 2020, 8.5)

	if !a.Equal(b) {
		t.Error("movies with the same ID should be equal")
	}
	if a.Equal(c) {
		t.Error("movies with different IDs should not be equal")
	}
	if !(Movie{}).Equal(Movie{}) {
		t.Error("two movies without IDs should be equal")
	}
	if (Movie{}).Equal(a) {
		t.Error("a movie without ID should not equal one with an ID")
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	if FeatureFilm.String() != "FEATURE_FILM" {
		t.Errorf("FeatureFilm.String() = %q", FeatureFilm.String())
	}
	if Category(99).String() != "unknown" {
		t.Errorf("Category(99).String() = %q", Category(99).String())
	}
	text, err := ShortFilm.MarshalText()
	if err != nil || string(text) != "SHORT_FILM" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}

func TestCatalog_PutGet(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(NewMovie("M1", "One", "Action", 2020, 8.5))
	c.Put(NewMovie("M2", "Two", "Drama", 2019, 7.0))
	c.Put(NewMovie("M3", "Three", "Drama", 2021, 9.0))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	m, ok := c.Get("M2")
	if !ok || m.Title != "Two" {
		t.Errorf("Get(M2) = %+v, %v", m, ok)
	}
	if _, ok := c.Get("m2"); ok {
		t.Error("IDs must be case-sensitive")
	}
	if !c.Contains("M3") || c.Contains("M4") {
		t.Error("Contains() mismatch")
	}
}

func TestCatalog_DuplicateKeepsPosition(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(NewMovie("M1", "One", "Action", 2020, 8.5))
	c.Put(NewMovie("M2", "Two", "Drama", 2019, 7.0))
	c.Put(NewMovie("M1", "One (remaster)", "Action", 2020, 9.1))

	movies := c.Movies()
	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}
	if movies[0].ID != "M1" || movies[0].Title != "One (remaster)" {
		t.Errorf("movies[0] = %+v, want replaced M1 in first position", movies[0])
	}
	if movies[1].ID != "M2" {
		t.Errorf("movies[1] = %+v, want M2", movies[1])
	}
}

func TestCatalog_MoviesIsCopy(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(NewMovie("M1", "One", "Action", 2020, 8.5))

	movies := c.Movies()
	movies[0].Title = "changed"

	m, _ := c.Get("M1")
	if m.Title != "One" {
		t.Error("Movies() must not expose internal storage")
	}
}
