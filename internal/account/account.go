// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"fmt"
	"strings"
	"time"
)

// Account is one user: credentials, tier, and the watchlist and history it owns.
// The watchlist and history are never shared between accounts.
type Account struct {
	username     string
	passwordHash string
	role         Role
	watchlist    *Watchlist
	history      *History
}

// New creates an account with a freshly hashed password and empty lists.
func New(username, password string, role Role) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyField
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Account{
		username:     username,
		passwordHash: hash,
		role:         role,
		watchlist:    NewWatchlist(),
		history:      NewHistory(),
	}, nil
}

// Restore rebuilds an account from persisted fields. The stored credential
// may be a bcrypt hash, a legacy digest, or a plaintext seed that gets hashed.
// A nil watchlist or history is replaced by an empty one. IDs present in both
// are dropped from the watchlist so the two stay disjoint.
func Restore(username, storedCredential string, role Role, watchlist *Watchlist, history *History) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyField
	}
	hash, err := normalizeStored(strings.TrimSpace(storedCredential))
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", username, err)
	}
	if watchlist == nil {
		watchlist = NewWatchlist()
	}
	if history == nil {
		history = NewHistory()
	}
	for _, id := range watchlist.IDs() {
		if history.Contains(id) {
			watchlist.Remove(id)
		}
	}
	return &Account{
		username:     username,
		passwordHash: hash,
		role:         role,
		watchlist:    watchlist,
		history:      history,
	}, nil
}

// Username returns the unique, case-sensitive account name.
func (a *Account) Username() string { return a.username }

// PasswordHash returns the stored credential in its persisted form.
func (a *Account) PasswordHash() string { return a.passwordHash }

// Role returns the account tier.
func (a *Account) Role() Role { return a.role }

// SetRole changes the tier. Lowering the tier keeps an over-quota watchlist
// but blocks further additions until it is back under the limit.
func (a *Account) SetRole(r Role) { a.role = r }

// Watchlist returns the account's watchlist.
func (a *Account) Watchlist() *Watchlist { return a.watchlist }

// History returns the account's watch history.
func (a *Account) History() *History { return a.history }

// VerifyPassword reports whether candidate matches the stored credential.
func (a *Account) VerifyPassword(candidate string) bool {
	return verify(a.passwordHash, candidate)
}

// NeedsRehash reports whether the stored credential uses the legacy digest.
func (a *Account) NeedsRehash() bool {
	return a.passwordHash != "" && !isBcryptHash(a.passwordHash)
}

// SetPassword replaces the credential with a bcrypt hash of plain.
func (a *Account) SetPassword(plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return err
	}
	a.passwordHash = hash
	return nil
}

// WatchlistLimit returns the tier's watchlist cap.
func (a *Account) WatchlistLimit() int { return a.role.WatchlistLimit() }

// RecommendationLimit returns the tier's per-request recommendation cap.
func (a *Account) RecommendationLimit() int { return a.role.RecommendationLimit() }

// CanAddToWatchlist reports whether the watchlist is below the tier cap.
func (a *Account) CanAddToWatchlist() bool {
	return a.watchlist.Len() < a.WatchlistLimit()
}

// AddToWatchlist lists a movie to watch later.
func (a *Account) AddToWatchlist(id string) error {
	id = strings.TrimSpace(id)
	switch {
	case id == "":
		return ErrEmptyField
	case a.history.Contains(id):
		return ErrAlreadyWatched
	case a.watchlist.Contains(id):
		return ErrAlreadyListed
	case !a.CanAddToWatchlist():
		return ErrWatchlistFull
	}
	a.watchlist.Add(id)
	return nil
}

// RemoveFromWatchlist removes a listed movie.
func (a *Account) RemoveFromWatchlist(id string) error {
	if !a.watchlist.Remove(id) {
		return ErrNotListed
	}
	return nil
}

// MarkWatched moves a movie into the history on the given day and takes it
// off the watchlist. It reports whether the movie had been listed.
func (a *Account) MarkWatched(id string, on time.Time) (bool, error) {
	id = strings.TrimSpace(id)
	switch {
	case id == "":
		return false, ErrEmptyField
	case a.history.Contains(id):
		return false, ErrAlreadyWatched
	}
	a.history.Add(id, on)
	return a.watchlist.Remove(id), nil
}
