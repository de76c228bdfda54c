// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator (struct info is cached once) and
// translates field errors into short human-readable messages. Besides the
// built-in tags it registers:
//
//   - trimmed: the string has no leading or trailing whitespace
//   - singleline: the string contains no CR or LF
//   - recordkey: none of the users file separators (see IsRecordKey)
//   - maxbytes=N: at most N bytes, where max counts runes
//
// They exist because records are stored one per line, their fields are
// trimmed when loaded, and bcrypt limits passwords to 72 bytes.
//
//	type registerRequest struct {
//	    Username string `validate:"required,recordkey,max=64"`
//	    Password string `validate:"required,maxbytes=72"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Errors()[0].Field(), verr.HasTag("required"), verr.Error()
//	}
package validation
