// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/recommend"
	"github.com/tomtom215/cinetrack/internal/session"
)

// errExit ends the menu loop without an error.
var errExit = errors.New("exit requested")

// menuOptions holds display and default settings for the menu.
type menuOptions struct {
	JSON            bool
	DefaultCount    int
	DefaultStrategy recommend.Strategy
}

// menu is the interactive text front end over a session.Coordinator.
type menu struct {
	coord *session.Coordinator
	out   io.Writer
	lines <-chan string
	opts  menuOptions
}

func newMenu(coord *session.Coordinator, in io.Reader, out io.Writer, opts menuOptions) *menu {
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = recommend.DefaultConfig().DefaultCount
	}
	return &menu{
		coord: coord,
		out:   out,
		lines: readLines(in),
		opts:  opts,
	}
}

// readLines feeds input lines to a channel so a blocked read never holds up
// shutdown. The channel is closed at end of input.
func readLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			ch <- strings.TrimRight(scanner.Text(), "\r")
		}
	}()
	return ch
}

// run shows the menu until the user exits, input ends, or ctx is canceled.
func (m *menu) run(ctx context.Context) error {
	m.printf("Welcome to cinetrack. %d movies in the catalog.\n", m.coord.Catalog().Len())
	for {
		var err error
		if _, ok := m.coord.Current(); ok {
			err = m.accountMenu(ctx)
		} else {
			err = m.startMenu(ctx)
		}
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return nil
		default:
			return err
		}
	}
}

func (m *menu) startMenu(ctx context.Context) error {
	m.printf("\n1) Login\n2) Register\n0) Exit\n")
	choice, err := m.prompt(ctx, "Choose")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return m.login(ctx)
	case "2":
		return m.register(ctx)
	case "0", "q", "exit":
		return errExit
	default:
		m.printf("Unknown option %q\n", choice)
		return nil
	}
}

func (m *menu) accountMenu(ctx context.Context) error {
	acct, _ := m.coord.Current()
	m.printf("\nLogged in as %s (%s)\n", acct.Username(), acct.Role())
	m.printf(" 1) Browse catalog\n 2) Add to watchlist\n 3) Remove from watchlist\n" +
		" 4) View watchlist\n 5) Mark as watched\n 6) View history\n 7) Recommendations\n" +
		" 8) Change password\n 9) Register another account\n10) Change tier\n" +
		"11) Account summary\n12) Logout\n 0) Exit\n")
	choice, err := m.prompt(ctx, "Choose")
	if err != nil {
		return err
	}

	actions := map[string]func(context.Context) error{
		"1":  m.browse,
		"2":  m.addToWatchlist,
		"3":  m.removeFromWatchlist,
		"4":  m.showWatchlist,
		"5":  m.markWatched,
		"6":  m.showHistory,
		"7":  m.recommend,
		"8":  m.changePassword,
		"9":  m.register,
		"10": m.changeTier,
		"11": m.showSummary,
	}
	switch choice {
	case "12":
		m.coord.Logout()
		m.printf("Logged out.\n")
		return nil
	case "0", "q", "exit":
		return errExit
	}
	action, ok := actions[choice]
	if !ok {
		m.printf("Unknown option %q\n", choice)
		return nil
	}
	return action(ctx)
}

func (m *menu) login(ctx context.Context) error {
	username, err := m.prompt(ctx, "Username")
	if err != nil {
		return err
	}
	password, err := m.prompt(ctx, "Password")
	if err != nil {
		return err
	}
	acct, err := m.coord.Login(username, password)
	if err != nil {
		return m.report(err)
	}
	m.printf("Welcome back, %s.\n", acct.Username())
	return nil
}

func (m *menu) register(ctx context.Context) error {
	username, err := m.prompt(ctx, "New username")
	if err != nil {
		return err
	}
	password, err := m.prompt(ctx, "New password")
	if err != nil {
		return err
	}
	tier, err := m.prompt(ctx, "Tier (basic/premium) [basic]")
	if err != nil {
		return err
	}
	acct, err := m.coord.Register(username, password, account.ParseRole(tier))
	if acct == nil {
		return m.report(err)
	}
	m.printf("Account %s created (%s).\n", acct.Username(), acct.Role())
	return m.report(err)
}

func (m *menu) browse(context.Context) error {
	movies := m.coord.Catalog().Movies()
	if m.opts.JSON {
		return m.writeJSON(movies)
	}
	if len(movies) == 0 {
		m.printf("The catalog is empty.\n")
		return nil
	}
	for _, movie := range movies {
		m.printf("%s\n", movie)
	}
	return nil
}

func (m *menu) addToWatchlist(ctx context.Context) error {
	id, err := m.prompt(ctx, "Movie ID")
	if err != nil {
		return err
	}
	if err := m.coord.AddToWatchlist(id); err != nil {
		return m.report(err)
	}
	m.printf("Added %s to your watchlist.\n", strings.TrimSpace(id))
	return nil
}

func (m *menu) removeFromWatchlist(ctx context.Context) error {
	id, err := m.prompt(ctx, "Movie ID")
	if err != nil {
		return err
	}
	if err := m.coord.RemoveFromWatchlist(id); err != nil {
		return m.report(err)
	}
	m.printf("Removed %s from your watchlist.\n", strings.TrimSpace(id))
	return nil
}

func (m *menu) markWatched(ctx context.Context) error {
	id, err := m.prompt(ctx, "Movie ID")
	if err != nil {
		return err
	}
	date, err := m.prompt(ctx, "Watched on (YYYY-MM-DD) [today]")
	if err != nil {
		return err
	}
	removed, err := m.coord.MarkWatched(id, date)
	if err != nil && !session.IsSaveFailure(err) {
		return m.report(err)
	}
	m.printf("Marked %s as watched.\n", strings.TrimSpace(id))
	if removed {
		m.printf("It was removed from your watchlist.\n")
	}
	return m.report(err)
}

func (m *menu) showWatchlist(context.Context) error {
	items, err := m.coord.Watchlist()
	if err != nil {
		return m.report(err)
	}
	return m.showItems("Your watchlist is empty.", items)
}

func (m *menu) showHistory(context.Context) error {
	items, err := m.coord.History()
	if err != nil {
		return m.report(err)
	}
	return m.showItems("You have not watched anything yet.", items)
}

func (m *menu) showItems(empty string, items []session.Item) error {
	if m.opts.JSON {
		return m.writeJSON(items)
	}
	if len(items) == 0 {
		m.printf("%s\n", empty)
		return nil
	}
	for _, item := range items {
		m.printf("%s\n", formatItem(item))
	}
	return nil
}

func (m *menu) recommend(ctx context.Context) error {
	strategies := recommend.Strategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.String()
	}
	name, err := m.prompt(ctx, fmt.Sprintf("Strategy (%s) [%s]", strings.Join(names, "/"), m.opts.DefaultStrategy))
	if err != nil {
		return err
	}
	strategy := m.opts.DefaultStrategy
	if strings.TrimSpace(name) != "" {
		parsed, ok := recommend.ParseStrategy(name)
		if !ok {
			m.printf("Unknown strategy %q, using %s.\n", name, m.opts.DefaultStrategy)
		} else {
			strategy = parsed
		}
	}

	countText, err := m.prompt(ctx, fmt.Sprintf("How many [%d]", m.opts.DefaultCount))
	if err != nil {
		return err
	}
	count, err := parseCount(countText, m.opts.DefaultCount)
	if err != nil {
		m.printf("Not a number: %q\n", countText)
		return nil
	}

	resp, err := m.coord.Recommend(ctx, count, strategy)
	if err != nil {
		return m.report(err)
	}
	if m.opts.JSON {
		return m.writeJSON(resp)
	}
	if len(resp.Movies) == 0 {
		m.printf("Nothing to recommend right now.\n")
		return nil
	}
	m.printf("Recommended by %s (%s):\n", resp.Strategy, resp.Tier)
	for i, movie := range resp.Movies {
		m.printf("%2d. %s\n", i+1, movie)
	}
	return nil
}

func (m *menu) changePassword(ctx context.Context) error {
	oldPassword, err := m.prompt(ctx, "Current password")
	if err != nil {
		return err
	}
	newPassword, err := m.prompt(ctx, "New password")
	if err != nil {
		return err
	}
	if err := m.coord.ChangePassword(oldPassword, newPassword); err != nil {
		return m.report(err)
	}
	m.printf("Password changed.\n")
	return nil
}

func (m *menu) changeTier(ctx context.Context) error {
	tier, err := m.prompt(ctx, "New tier (basic/premium)")
	if err != nil {
		return err
	}
	role := account.ParseRole(tier)
	err = m.coord.SetRole(role)
	if err != nil && !session.IsSaveFailure(err) {
		return m.report(err)
	}
	m.printf("Tier set to %s.\n", role)
	return m.report(err)
}

func (m *menu) showSummary(context.Context) error {
	summary, err := m.coord.Summary()
	if err != nil {
		return m.report(err)
	}
	if m.opts.JSON {
		return m.writeJSON(summary)
	}
	limit := "unlimited"
	if summary.WatchlistLimit > 0 {
		limit = strconv.Itoa(summary.WatchlistLimit)
	}
	m.printf("User: %s\nTier: %s\nWatchlist: %d of %s\nWatched: %d\nRecommendations per request: %d\n",
		summary.Username, summary.Role, summary.WatchlistSize, limit,
		summary.HistorySize, summary.RecommendationLimit)
	return nil
}

// prompt prints label and waits for one line of input.
// It returns io.EOF when input ends and ctx.Err() when ctx is canceled.
func (m *menu) prompt(ctx context.Context, label string) (string, error) {
	m.printf("%s: ", label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// report prints a user-facing error. A failed save is only a warning since
// the change is kept in memory. Always returns nil so the menu continues.
func (m *menu) report(err error) error {
	switch {
	case err == nil:
	case session.IsSaveFailure(err):
		m.printf("Warning: %v\n", err)
	default:
		m.printf("Error: %v\n", err)
	}
	return nil
}

func (m *menu) writeJSON(v any) error {
	enc := json.NewEncoder(m.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func (m *menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

// formatItem renders a watchlist or history line. Movies missing from the
// catalog are shown by ID.
func formatItem(item session.Item) string {
	text := fmt.Sprintf("[%s] unknown", item.ID)
	if item.Known {
		text = item.Movie.String()
	}
	if item.WatchedOn != "" {
		text += " watched " + item.WatchedOn
	}
	return text
}

// parseCount reads a recommendation count, falling back to def for blank input.
func parseCount(text string, def int) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return def, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", text, err)
	}
	return n, nil
}
