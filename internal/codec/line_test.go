// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import (
	"slices"
	"testing"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty line", "", []string{""}},
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trailing delimiter", "a,b,", []string{"a", "b", ""}},
		{"quoted delimiter", `M1,"Crouching Tiger, Hidden Dragon",Action`, []string{"M1", "Crouching Tiger, Hidden Dragon", "Action"}},
		{"doubled quotes dropped", `"say ""hi""",x`, []string{"say hi", "x"}},
		{"quote mid field", `ab"c,d"e,f`, []string{"abc,de", "f"}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"spaces kept", " a , b ", []string{" a ", " b "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseLine(tt.line); !slices.Equal(got, tt.want) {
				t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestEscapeField(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"plain":         "plain",
		"":              "",
		"a,b":           `"a,b"`,
		`say "hi"`:      `"say ""hi"""`,
		"two\nlines":    "\"two\nlines\"",
		"M1@2024-01-02": "M1@2024-01-02",
	}
	for in, want := range tests {
		if got := escapeField(in); got != want {
			t.Errorf("escapeField(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapedCommaSurvivesParse(t *testing.T) {
	t.Parallel()

	line := joinRecord("id", "Crouching Tiger, Hidden Dragon", "x")
	if got := ParseLine(line); !slices.Equal(got, []string{"id", "Crouching Tiger, Hidden Dragon", "x"}) {
		t.Errorf("ParseLine(joinRecord(...)) = %q", got)
	}
}
