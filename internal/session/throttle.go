// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import (
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedUsernames caps the limiter map. Failed logins for unknown
// usernames are tracked too, so the map would otherwise grow with every name
// tried.
const maxTrackedUsernames = 1024

// loginThrottle limits failed login attempts per username. Each username may
// fail `attempts` times in a burst; after that one more attempt is allowed
// per window. A successful login clears the username's history.
type loginThrottle struct {
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	capacity int
}

// newLoginThrottle returns nil when attempts is zero or less, which disables throttling.
func newLoginThrottle(attempts int, window time.Duration) *loginThrottle {
	if attempts <= 0 || window <= 0 {
		return nil
	}
	return &loginThrottle{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(window),
		burst:    attempts,
		capacity: maxTrackedUsernames,
	}
}

// blocked reports whether the username has used up its failed attempts.
func (t *loginThrottle) blocked(username string, now time.Time) bool {
	if t == nil {
		return false
	}
	l, ok := t.limiters[username]
	return ok && l.TokensAt(now) < 1
}

// fail records a failed attempt.
func (t *loginThrottle) fail(username string, now time.Time) {
	if t == nil {
		return
	}
	l, ok := t.limiters[username]
	if !ok {
		if len(t.limiters) >= t.capacity {
			t.prune(now)
		}
		l = rate.NewLimiter(t.rate, t.burst)
		t.limiters[username] = l
	}
	l.AllowN(now, 1)
}

// prune drops limiters that have refilled completely, which behave exactly
// like a fresh one. When none has, an arbitrary entry is evicted.
func (t *loginThrottle) prune(now time.Time) {
	for name, l := range t.limiters {
		if l.TokensAt(now) >= float64(t.burst) {
			delete(t.limiters, name)
		}
	}
	if len(t.limiters) < t.capacity {
		return
	}
	for name := range t.limiters {
		delete(t.limiters, name)
		return
	}
}

// reset forgets failed attempts after a successful login.
func (t *loginThrottle) reset(username string) {
	if t == nil {
		return
	}
	delete(t.limiters, username)
}
