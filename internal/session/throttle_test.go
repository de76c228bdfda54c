// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import (
	"fmt"
	"testing"
	"time"
)

func TestLoginThrottle_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	th := newLoginThrottle(2, time.Minute)

	th.fail("alice", now)
	if th.blocked("alice", now) {
		t.Fatal("blocked after one failure")
	}
	th.fail("alice", now)
	if !th.blocked("alice", now) {
		t.Fatal("not blocked after two failures")
	}
	if th.blocked("alice", now.Add(time.Minute)) {
		t.Error("still blocked after one window")
	}
	th.reset("alice")
	if _, ok := th.limiters["alice"]; ok {
		t.Error("reset kept the limiter")
	}
}

func TestLoginThrottle_CapsTrackedUsernames(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	th := newLoginThrottle(3, time.Minute)
	th.capacity = 4

	for i := 0; i < 10; i++ {
		th.fail(fmt.Sprintf("ghost-%d", i), now)
		if len(th.limiters) > th.capacity {
			t.Fatalf("tracking %d usernames, cap is %d", len(th.limiters), th.capacity)
		}
	}

	// Refilled limiters are dropped before anything still throttled.
	th = newLoginThrottle(1, time.Minute)
	th.capacity = 2
	th.fail("old", now)
	th.fail("recent", now.Add(2*time.Minute))
	th.fail("new", now.Add(2*time.Minute))

	if _, ok := th.limiters["old"]; ok {
		t.Error("refilled limiter for old was kept")
	}
	if !th.blocked("recent", now.Add(2*time.Minute)) {
		t.Error("recent should still be blocked")
	}
}

func TestLoginThrottle_DisabledIsNil(t *testing.T) {
	t.Parallel()

	th := newLoginThrottle(0, time.Minute)
	if th != nil {
		t.Fatal("zero attempts should disable the throttle")
	}
	th.fail("alice", time.Now())
	if th.blocked("alice", time.Now()) {
		t.Error("nil throttle blocked a login")
	}
	th.reset("alice")
}
