// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
	"github.com/tomtom215/cinetrack/internal/codec"
	"github.com/tomtom215/cinetrack/internal/recommend"
)

func TestMain(m *testing.M) {
	if err := account.SetHashCost(bcrypt.MinCost); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// memorySaver records saves and fails while failing is set.
type memorySaver struct {
	saves   int
	failing bool
}

func (s *memorySaver) SaveAccounts(*account.Set) error {
	if s.failing {
		return errors.New("disk full")
	}
	s.saves++
	return nil
}

type fixture struct {
	coord *Coordinator
	saver *memorySaver
	set   *account.Set
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat := catalog.New()
	cat.Put(catalog.NewMovie("M1", "One", "Action", 2020, 8.5))
	cat.Put(catalog.NewMovie("M2", "Two", "Action", 2019, 7.0))
	cat.Put(catalog.NewMovie("M3", "Three", "Drama", 2021, 9.0))

	set := account.NewSet()
	alice, err := account.New("alice", "secret", account.RoleBasic)
	if err != nil {
		t.Fatal(err)
	}
	if err := set.Add(alice); err != nil {
		t.Fatal(err)
	}

	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{saver: &memorySaver{}, set: set, now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	f.coord, err = New(cat, set, f.saver, engine, Config{
		LoginAttempts: 3,
		LoginWindow:   time.Minute,
		Now:           func() time.Time { return f.now },
	}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	if _, err := f.coord.Login("alice", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	if _, ok := f.coord.Current(); ok {
		t.Fatal("new coordinator should be anonymous")
	}

	if _, err := f.coord.Login("alice", "wrong"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := f.coord.Login("nobody", "secret"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v", err)
	}
	if _, err := f.coord.Login("Alice", "secret"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("usernames are case-sensitive, got %v", err)
	}
	if _, ok := f.coord.Current(); ok {
		t.Error("failed logins must leave the session anonymous")
	}

	acct, err := f.coord.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if cur, ok := f.coord.Current(); !ok || cur != acct {
		t.Error("Current() should be the logged in account")
	}

	f.coord.Logout()
	if _, ok := f.coord.Current(); ok {
		t.Error("Logout() should end the session")
	}
}

func TestLogin_Throttle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	for range 3 {
		if _, err := f.coord.Login("alice", "bad"); !errors.Is(err, account.ErrInvalidCredentials) {
			t.Fatalf("Login(bad) error = %v", err)
		}
	}
	if _, err := f.coord.Login("alice", "secret"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("Login after 3 failures error = %v, want ErrTooManyAttempts", err)
	}

	f.now = f.now.Add(time.Minute)
	if _, err := f.coord.Login("alice", "secret"); err != nil {
		t.Fatalf("Login after window error = %v", err)
	}

	// A success clears the failures.
	f.coord.Logout()
	for range 2 {
		_, _ = f.coord.Login("alice", "bad")
	}
	if _, err := f.coord.Login("alice", "secret"); err != nil {
		t.Errorf("Login after reset error = %v", err)
	}
}

func TestLogin_UpgradesLegacyHash(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	legacy, err := account.Restore("old", "a4b9c5a7afb7cee3ef", account.RoleBasic, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.set.Put(legacy)

	if _, err := f.coord.Login("old", "abc"); err != nil {
		t.Fatalf("Login(legacy) error = %v", err)
	}
	if legacy.NeedsRehash() || !strings.HasPrefix(legacy.PasswordHash(), "$2") {
		t.Errorf("hash not upgraded: %q", legacy.PasswordHash())
	}
	if f.saver.saves != 1 {
		t.Errorf("saves = %d, want 1", f.saver.saves)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"duplicate", "alice", "pw", account.ErrDuplicateUsername},
		{"empty username", "  ", "pw", account.ErrEmptyField},
		{"empty password", "bob", "", account.ErrEmptyField},
		{"comma in username", "bob,jr", "pw", ErrInvalidInput},
		{"at sign in username", "bob@home", "pw", ErrInvalidInput},
		{"password too long", "bob", strings.Repeat("p", 73), ErrInvalidInput},
		{"multibyte password over 72 bytes", "zoe", strings.Repeat("é", 40), ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			if _, err := f.coord.Register(tt.username, tt.password, account.RoleBasic); !errors.Is(err, tt.want) {
				t.Errorf("Register() error = %v, want %v", err, tt.want)
			}
			if f.set.Len() != 1 || f.saver.saves != 0 {
				t.Errorf("rejected registration changed state: %d accounts, %d saves", f.set.Len(), f.saver.saves)
			}
		})
	}
}

func TestRegister_SessionHandling(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	bob, err := f.coord.Register(" bob ", "pw", account.RolePremium)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if bob.Username() != "bob" || bob.Role() != account.RolePremium {
		t.Errorf("registered %q %v", bob.Username(), bob.Role())
	}
	if cur, _ := f.coord.Current(); cur != bob {
		t.Error("registering while anonymous should log the new account in")
	}

	if _, err := f.coord.Register("carol", "pw", account.RoleBasic); err != nil {
		t.Fatal(err)
	}
	if cur, _ := f.coord.Current(); cur != bob {
		t.Error("registering while logged in must keep the active session")
	}
	if f.saver.saves != 2 || f.set.Len() != 3 {
		t.Errorf("saves = %d, accounts = %d; want 2, 3", f.saver.saves, f.set.Len())
	}
}

func TestMutationsRequireLogin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	checks := map[string]error{
		"add":      f.coord.AddToWatchlist("M1"),
		"remove":   f.coord.RemoveFromWatchlist("M1"),
		"password": f.coord.ChangePassword("secret", "new"),
		"role":     f.coord.SetRole(account.RolePremium),
	}
	_, checks["watched"] = f.coord.MarkWatched("M1", "")
	_, checks["recommend"] = f.coord.Recommend(context.Background(), 5, recommend.StrategyDefault)
	_, checks["watchlist"] = f.coord.Watchlist()
	_, checks["history"] = f.coord.History()
	_, checks["summary"] = f.coord.Summary()

	for name, err := range checks {
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("%s: error = %v, want ErrNotAuthenticated", name, err)
		}
	}
}

func TestWatchlistFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.login(t)

	if err := f.coord.AddToWatchlist("M1"); err != nil {
		t.Fatal(err)
	}
	if err := f.coord.AddToWatchlist("M9"); !errors.Is(err, ErrUnknownMovie) {
		t.Errorf("unknown movie error = %v", err)
	}
	if err := f.coord.AddToWatchlist("M1"); !errors.Is(err, account.ErrAlreadyListed) {
		t.Errorf("duplicate add error = %v", err)
	}

	removed, err := f.coord.MarkWatched("M1", "")
	if err != nil || !removed {
		t.Fatalf("MarkWatched() = %v, %v", removed, err)
	}
	if _, err := f.coord.MarkWatched("M1", ""); !errors.Is(err, account.ErrAlreadyWatched) {
		t.Errorf("second MarkWatched error = %v", err)
	}
	if err := f.coord.AddToWatchlist("M1"); !errors.Is(err, account.ErrAlreadyWatched) {
		t.Errorf("add watched movie error = %v", err)
	}
	if _, err := f.coord.MarkWatched("M2", "June 3rd"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad date error = %v", err)
	}
	if _, err := f.coord.MarkWatched("M2", "2023-12-25"); err != nil {
		t.Fatal(err)
	}
	if err := f.coord.RemoveFromWatchlist("M3"); !errors.Is(err, account.ErrNotListed) {
		t.Errorf("remove unlisted error = %v", err)
	}

	history, err := f.coord.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 || history[0].WatchedOn != "2024-06-01" || history[1].WatchedOn != "2023-12-25" {
		t.Errorf("History() = %+v", history)
	}
	if !history[0].Known || history[0].Movie.Title != "One" {
		t.Errorf("history[0] not resolved: %+v", history[0])
	}

	// Saves: add M1, mark M1, mark M2.
	if f.saver.saves != 3 {
		t.Errorf("saves = %d, want 3", f.saver.saves)
	}
}

func TestWatchlist_UnknownIDsKept(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice, _ := f.set.Get("alice")
	_ = alice.AddToWatchlist("GONE")
	f.login(t)

	items, err := f.coord.Watchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Known || items[0].ID != "GONE" {
		t.Errorf("Watchlist() = %+v, want one unknown item", items)
	}
	if err := f.coord.RemoveFromWatchlist("GONE"); err != nil {
		t.Errorf("removing an unknown ID should work, got %v", err)
	}
}

func TestSaveFailureKeepsChange(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.login(t)
	f.saver.failing = true

	err := f.coord.AddToWatchlist("M2")
	if !errors.Is(err, ErrSaveFailed) || !IsSaveFailure(err) {
		t.Fatalf("AddToWatchlist error = %v, want ErrSaveFailed", err)
	}
	cur, _ := f.coord.Current()
	if !cur.Watchlist().Contains("M2") {
		t.Error("change must stay in memory after a failed save")
	}

	f.saver.failing = false
	if err := f.coord.RequestSave(); err != nil {
		t.Errorf("later save error = %v", err)
	}
}

func TestChangePasswordAndRole(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.login(t)

	if err := f.coord.ChangePassword("wrong", "next"); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("wrong old password error = %v", err)
	}
	if err := f.coord.ChangePassword("secret", ""); !errors.Is(err, account.ErrEmptyField) {
		t.Errorf("empty new password error = %v", err)
	}
	if err := f.coord.ChangePassword("secret", strings.Repeat("é", 40)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ChangePassword(80 bytes) error = %v, want ErrInvalidInput", err)
	}
	if err := f.coord.ChangePassword("secret", "next"); err != nil {
		t.Fatal(err)
	}
	f.coord.Logout()
	if _, err := f.coord.Login("alice", "secret"); err == nil {
		t.Error("old password still works")
	}
	if _, err := f.coord.Login("alice", "next"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}

	if err := f.coord.SetRole(account.RolePremium); err != nil {
		t.Fatal(err)
	}
	summary, err := f.coord.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if summary.Role != "PREMIUM" || summary.WatchlistLimit != 0 || summary.RecommendationLimit != 10 {
		t.Errorf("Summary() = %+v", summary)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.login(t)
	if _, err := f.coord.MarkWatched("M1", "2024-01-01"); err != nil {
		t.Fatal(err)
	}

	resp, err := f.coord.Recommend(context.Background(), 99, recommend.StrategyDefault)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, m := range resp.Movies {
		got = append(got, m.ID)
	}
	if strings.Join(got, ",") != "M2,M3" || resp.Effective != 5 || resp.Strategy != recommend.StrategyGenre {
		t.Errorf("Recommend() = %v effective=%d strategy=%v", got, resp.Effective, resp.Strategy)
	}
}

func TestClose_WritesUsersFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := filepath.Join(dir, "movies.csv")
	users := filepath.Join(dir, "users.csv")
	if err := os.WriteFile(movies, []byte("id,title,genre,year,rating\nM1,One,Action,2020,8.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := codec.NewStore(movies, users, zerolog.Nop())
	store.CreateMissingUsers = true
	cat, err := store.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	set, err := store.LoadAccounts()
	if err != nil {
		t.Fatal(err)
	}
	engine, err := recommend.NewEngine(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	coord, err := New(cat, set, store, engine, Config{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := coord.Register("dana", "pw", account.RoleBasic); err != nil {
		t.Fatal(err)
	}
	if err := coord.AddToWatchlist("M1"); err != nil {
		t.Fatal(err)
	}
	if err := coord.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := coord.Current(); ok {
		t.Error("Close() should end the session")
	}

	reloaded, err := store.LoadAccounts()
	if err != nil {
		t.Fatal(err)
	}
	dana, ok := reloaded.Get("dana")
	if !ok || dana.Watchlist().String() != "M1" || !dana.VerifyPassword("pw") {
		t.Errorf("reloaded dana = %v", dana)
	}
}

func TestClose_FlushesPastOpenBreaker(t *testing.T) {
	cat := catalog.New()
	cat.Put(catalog.NewMovie("M1", "One", "Action", 2020, 8.5))
	engine, err := recommend.NewEngine(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	saver := &memorySaver{failing: true}
	breaker := codec.NewBreakerSaver(saver, codec.BreakerConfig{Failures: 1, Cooldown: time.Hour}, zerolog.Nop())
	coord, err := New(cat, account.NewSet(), breaker, engine, Config{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := coord.Register("erin", "pw", account.RoleBasic); !IsSaveFailure(err) {
		t.Fatalf("Register() error = %v, want save failure", err)
	}
	saver.failing = false

	err = coord.AddToWatchlist("M1")
	if !IsSaveFailure(err) || !errors.Is(err, codec.ErrSavesSuspended) {
		t.Fatalf("AddToWatchlist() error = %v, want suspended save", err)
	}
	if saver.saves != 0 {
		t.Fatalf("saves = %d, want 0 while the breaker is open", saver.saves)
	}

	if err := coord.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1 after Close", saver.saves)
	}
}
