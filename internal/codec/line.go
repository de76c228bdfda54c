// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import "strings"

const (
	delimiter = ','
	quote     = '"'
)

// ParseLine splits one record line on commas. A double quote toggles quoted
// mode, in which commas are kept as data; the toggling quotes themselves are
// dropped and doubled quotes get no special treatment. The result always has
// at least one field, so an empty line yields [""].
func ParseLine(line string) []string {
	fields := make([]string, 0, 5)
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == quote:
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}

// escapeField quotes a field that contains a comma, quote, or newline and
// doubles any quotes inside it. Other fields are returned unchanged.
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// joinRecord escapes and joins fields into one record line without a newline.
func joinRecord(fields ...string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, string(delimiter))
}
