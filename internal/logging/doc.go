// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package logging provides centralized zerolog-based structured logging for Cinetrack.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("movies", n).Msg("catalog loaded")
//	logging.Warn().Int("line", 12).Str("reason", "bad year").Msg("skipping movie row")
//
// Components take a zerolog.Logger by value and derive their own child:
//
//	logger := logging.Component("codec")
//
// # Sessions
//
// Every interactive session gets a short correlation ID so log lines from one
// login-to-logout run can be grouped:
//
//	ctx = logging.ContextWithCorrelationID(ctx, logging.GenerateCorrelationID())
//	logging.Ctx(ctx).Info().Str("user", name).Msg("login succeeded")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
