// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/catalog"
	"github.com/tomtom215/cinetrack/internal/validation"
)

// catalogFields is the column count of id,title,genre,year,rating.
const catalogFields = 5

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// LoadCatalog reads a movie catalog. The first line is a header and is
// skipped. Blank lines are ignored; rows with too few columns, unparsable
// numbers, or an ID that could not be stored in the users file are dropped
// with a warning. Columns past the fifth are ignored.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LoadCatalog(r io.Reader, logger zerolog.Logger) (*catalog.Catalog, error) {
	cat := catalog.New()
	skipped := 0

	err := eachRecord(r, func(lineNo int, fields []string) {
		m, reason := movieFromFields(fields)
		if reason != "" {
			skipped++
			logger.Warn().Int("line", lineNo).Str("reason", reason).Msg("skipping catalog row")
			return
		}
		cat.Put(m)
	})
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	logger.Debug().Int("movies", cat.Len()).Int("skipped", skipped).Msg("catalog parsed")
	return cat, nil
}

func movieFromFields(fields []string) (catalog.Movie, string) {
	if len(fields) < catalogFields {
		return catalog.Movie{}, fmt.Sprintf("expected %d columns, got %d", catalogFields, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] == "" {
		return catalog.Movie{}, "empty movie id"
	}
	if !validation.IsRecordKey(fields[0]) {
		return catalog.Movie{}, fmt.Sprintf("movie id %q contains a users file separator", fields[0])
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return catalog.Movie{}, fmt.Sprintf("invalid year %q", fields[3])
	}
	rating, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return catalog.Movie{}, fmt.Sprintf("invalid rating %q", fields[4])
	}
	return catalog.NewMovie(fields[0], fields[1], fields[2], year, rating), ""
}

// eachRecord calls fn with the 1-based line number and fields of every
// non-blank line after the header.
func eachRecord(r io.Reader, fn func(lineNo int, fields []string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(lineNo, ParseLine(line))
	}
	return sc.Err()
}
