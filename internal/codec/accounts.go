// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/account"
)

// accountsHeader is the first line written to a users file.
const accountsHeader = "username,password,role,watchlist,history"

const (
	accountFields       = 5
	legacyAccountFields = 4
)

// LoadAccounts reads a users file. Rows carry
// username,password,role,watchlist,history; older four-column rows without
// the role are read as BASIC accounts. A later row for the same username
// replaces the earlier one. Defective rows and history pairs are dropped with
// a warning.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LoadAccounts(r io.Reader, logger zerolog.Logger) (*account.Set, error) {
	set := account.NewSet()
	skipped := 0

	err := eachRecord(r, func(lineNo int, fields []string) {
		rec, reason := accountRecord(fields)
		if reason != "" {
			skipped++
			logger.Warn().Int("line", lineNo).Str("reason", reason).Msg("skipping account row")
			return
		}

		history, herr := account.ParseHistory(rec.history)
		if herr != nil {
			logger.Warn().Int("line", lineNo).Str("username", rec.username).Err(herr).
				Msg("dropping malformed history entries")
		}

		acct, aerr := account.Restore(rec.username, rec.password, account.ParseRole(rec.role),
			account.ParseWatchlist(rec.watchlist), history)
		if aerr != nil {
			skipped++
			logger.Warn().Int("line", lineNo).Str("reason", aerr.Error()).Msg("skipping account row")
			return
		}
		if acct.PasswordHash() == "" {
			logger.Warn().Int("line", lineNo).Str("username", rec.username).
				Msg("account has no password and cannot log in")
		}
		if _, dup := set.Get(acct.Username()); dup {
			logger.Warn().Int("line", lineNo).Str("username", rec.username).
				Msg("duplicate username, later row wins")
		}
		set.Put(acct)
	})
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}

	logger.Debug().Int("accounts", set.Len()).Int("skipped", skipped).Msg("accounts parsed")
	return set, nil
}

type rawAccount struct {
	username  string
	password  string
	role      string
	watchlist string
	history   string
}

func accountRecord(fields []string) (rawAccount, string) {
	var rec rawAccount
	switch {
	case len(fields) >= accountFields:
		rec = rawAccount{fields[0], fields[1], fields[2], fields[3], fields[4]}
	case len(fields) == legacyAccountFields:
		rec = rawAccount{fields[0], fields[1], account.RoleBasic.String(), fields[2], fields[3]}
	default:
		return rec, fmt.Sprintf("expected %d columns, got %d", accountFields, len(fields))
	}
	rec.username = strings.TrimSpace(rec.username)
	if rec.username == "" {
		return rec, "empty username"
	}
	return rec, ""
}

// WriteAccounts writes the header and one row per account in set order.
// The same set always produces the same bytes.
func WriteAccounts(w io.Writer, set *account.Set) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(accountsHeader + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range set.Accounts() {
		line := joinRecord(
			a.Username(),
			a.PasswordHash(),
			a.Role().String(),
			a.Watchlist().String(),
			a.History().String(),
		)
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write account %q: %w", a.Username(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush accounts: %w", err)
	}
	return nil
}
