// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"errors"
	"testing"
	"time"
)

func TestWatchlist(t *testing.T) {
	t.Parallel()

	w := ParseWatchlist("M1; M2;;M1;M3")
	if got := w.String(); got != "M1;M2;M3" {
		t.Errorf("String() = %q, want M1;M2;M3", got)
	}
	if w.Add("M2") {
		t.Error("Add(duplicate) = true")
	}
	if !w.Remove("M2") || w.Contains("M2") {
		t.Error("Remove(M2) failed")
	}
	if w.Remove("M2") {
		t.Error("Remove(absent) = true")
	}
	if ParseWatchlist("").Len() != 0 || ParseWatchlist("").String() != "" {
		t.Error("empty field should give empty watchlist")
	}
}

func TestParseHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"single", "M1@2024-01-02", "M1@2024-01-02", false},
		{"ordered", "M2@2024-02-01;M1@2024-01-02", "M2@2024-02-01;M1@2024-01-02", false},
		{"missing separator", "M1@2024-01-02;M2", "M1@2024-01-02", true},
		{"bad date", "M1@yesterday;M2@2024-05-06", "M2@2024-05-06", true},
		{"empty id", "@2024-01-02", "", true},
		{"repeat updates date in place", "M1@2024-01-02;M2@2024-01-03;M1@2024-02-02", "M1@2024-02-02;M2@2024-01-03", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := ParseHistory(tt.field)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHistory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := h.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistory_AddNormalizesToDay(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	loc := time.FixedZone("UTC+9", 9*60*60)
	if !h.Add("M1", time.Date(2024, 7, 4, 23, 59, 0, 0, loc)) {
		t.Fatal("Add(new) = false")
	}
	entries := h.Entries()
	if len(entries) != 1 || entries[0].Date() != "2024-07-04" {
		t.Errorf("Entries() = %+v, want one entry dated 2024-07-04", entries)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet()
	alice := mustNew(t, "alice", RoleBasic)
	bob := mustNew(t, "bob", RolePremium)

	if err := s.Add(alice); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(bob); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(mustNew(t, "alice", RolePremium)); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Add(duplicate) error = %v, want ErrDuplicateUsername", err)
	}
	if _, ok := s.Get("Alice"); ok {
		t.Error("Get is case-sensitive; Alice should not match alice")
	}

	replacement := mustNew(t, "alice", RolePremium)
	s.Put(replacement)
	accounts := s.Accounts()
	if s.Len() != 2 || accounts[0] != replacement || accounts[1] != bob {
		t.Errorf("Put should replace in place; got %d accounts", s.Len())
	}
}
