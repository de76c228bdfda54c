// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

// Set holds every known account keyed by username, in insertion order.
type Set struct {
	byName map[string]int
	items  []*Account
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{byName: make(map[string]int)}
}

// Add inserts a new account. It fails with ErrDuplicateUsername when the
// username is taken.
func (s *Set) Add(a *Account) error {
	if _, ok := s.byName[a.Username()]; ok {
		return ErrDuplicateUsername
	}
	s.byName[a.Username()] = len(s.items)
	s.items = append(s.items, a)
	return nil
}

// Put inserts or replaces an account. A replaced account keeps its position.
func (s *Set) Put(a *Account) {
	if i, ok := s.byName[a.Username()]; ok {
		s.items[i] = a
		return
	}
	s.byName[a.Username()] = len(s.items)
	s.items = append(s.items, a)
}

// Get looks up an account by exact username.
func (s *Set) Get(username string) (*Account, bool) {
	i, ok := s.byName[username]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Len returns the number of accounts.
func (s *Set) Len() int {
	return len(s.items)
}

// Accounts returns the accounts in insertion order.
func (s *Set) Accounts() []*Account {
	out := make([]*Account, len(s.items))
	copy(out, s.items)
	return out
}
