// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package codec reads and writes the two comma-separated data files.

Catalog file (read only):

	id,title,genre,year,rating
	M1,"Crouching Tiger, Hidden Dragon",Action,2000,7.9

Users file (read and rewritten on every change):

	username,password,role,watchlist,history
	alice,$2a$10$...,PREMIUM,M3;M7,M1@2024-01-02;M2@2024-02-10

Watchlists are movie IDs joined with ';'. Histories are id@YYYY-MM-DD pairs
joined with ';'. Rows written before roles existed have four columns and are
read as BASIC accounts.

A double quote toggles quoting while reading, so commas inside quotes stay in
the field. When writing, a field containing a comma, quote, or newline is
quoted with inner quotes doubled. The reader does not undouble quotes, which
is why usernames may not contain them.

Row-level problems never abort a load: the row (or history pair) is dropped
and a warning with the line number is logged. A missing or unreadable file is
reported as ErrSourceUnavailable.
*/
package codec
