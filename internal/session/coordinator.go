// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/recommend"
	"github.com/tomtom215/cinetrack/internal/validation"
)

// Saver persists the account set. *codec.Store implements it.
type Saver interface {
	SaveAccounts(set *account.Set) error
}

// Flusher is implemented by savers that may skip writes, such as a saver
// behind a circuit breaker. Flush always attempts the write.
type Flusher interface {
	Flush(set *account.Set) error
}

// Config holds the coordinator settings.
type Config struct {
	// LoginAttempts is the number of failed logins allowed per username
	// before throttling. Zero disables throttling.
	LoginAttempts int

	// LoginWindow is how long it takes for one throttled attempt to come back.
	LoginWindow time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Coordinator owns the catalog, the account set, and the one active session.
// Every successful change to an account is followed by a save. It is meant
// for a single interactive user and is not safe for concurrent use.
type Coordinator struct {
	catalog  *catalog.Catalog
	accounts *account.Set
	store    Saver
	engine   *recommend.Engine

	logger   zerolog.Logger
	throttle *loginThrottle
	now      func() time.Time

	current *account.Account
	ctx     context.Context
}

// New creates a coordinator with nobody logged in.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cat *catalog.Catalog, accounts *account.Set, store Saver, engine *recommend.Engine, cfg Config, logger zerolog.Logger) (*Coordinator, error) {
	if cat == nil || accounts == nil || store == nil || engine == nil {
		return nil, fmt.Errorf("session: catalog, accounts, store, and engine are required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	metrics.SetDataSizes(cat.Len(), accounts.Len())

	return &Coordinator{
		catalog:  cat,
		accounts: accounts,
		store:    store,
		engine:   engine,
		logger:   logger,
		throttle: newLoginThrottle(cfg.LoginAttempts, cfg.LoginWindow),
		now:      now,
		ctx:      logging.ContextWithLogger(context.Background(), logger),
	}, nil
}

// log returns the session logger tagged with the current correlation ID.
func (c *Coordinator) log() *zerolog.Logger {
	return logging.Ctx(c.ctx)
}

// Catalog returns the loaded catalog.
func (c *Coordinator) Catalog() *catalog.Catalog {
	return c.catalog
}

// Current returns the logged in account, if any.
func (c *Coordinator) Current() (*account.Account, bool) {
	return c.current, c.current != nil
}

// Login authenticates and starts a session. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials. A legacy credential is
// upgraded to bcrypt on success.
func (c *Coordinator) Login(username, password string) (*account.Account, error) {
	username = strings.TrimSpace(username)
	now := c.now()

	if c.throttle.blocked(username, now) {
		metrics.RecordLogin(metrics.OutcomeThrottled)
		c.log().Warn().Str("username", username).Msg("login throttled")
		return nil, ErrTooManyAttempts
	}

	acct, ok := c.accounts.Get(username)
	if !ok || !acct.VerifyPassword(password) {
		c.throttle.fail(username, now)
		metrics.RecordLogin(metrics.OutcomeRejected)
		c.log().Info().Str("username", username).Msg("login rejected")
		return nil, account.ErrInvalidCredentials
	}
	c.throttle.reset(username)

	if c.current != nil {
		c.Logout()
	}
	c.startSession(acct)
	metrics.RecordLogin(metrics.OutcomeSuccess)
	c.log().Info().Str("role", acct.Role().String()).Msg("logged in")

	if acct.NeedsRehash() {
		if err := acct.SetPassword(password); err != nil {
			c.log().Warn().Err(err).Msg("could not upgrade legacy password hash")
		} else if err := c.RequestSave(); err != nil {
			c.log().Warn().Err(err).Msg("upgraded password hash not saved yet")
		} else {
			c.log().Info().Msg("upgraded legacy password hash")
		}
	}
	return acct, nil
}

// registration is validated before an account is created.
type registration struct {
	Username string `validate:"required,recordkey,max=64"`
	Password string `validate:"required,maxbytes=72"`
}

// Register creates an account and saves it. When nobody is logged in the
// new account is logged in; otherwise the active session is kept.
// The account is returned even when the save fails.
func (c *Coordinator) Register(username, password string, role account.Role) (*account.Account, error) {
	acct, err := c.createAccount(username, password, role)
	metrics.RecordRegistration(err)
	if err != nil {
		c.log().Info().Str("username", username).Err(err).Msg("registration rejected")
		return nil, err
	}
	metrics.SetDataSizes(c.catalog.Len(), c.accounts.Len())
	c.log().Info().Str("username", acct.Username()).Str("role", role.String()).Msg("account registered")

	if c.current == nil {
		c.startSession(acct)
	}
	return acct, c.RequestSave()
}

func (c *Coordinator) createAccount(username, password string, role account.Role) (*account.Account, error) {
	req := registration{Username: strings.TrimSpace(username), Password: password}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, inputError(verr)
	}
	acct, err := account.New(req.Username, req.Password, role)
	if err != nil {
		return nil, err
	}
	if err := c.accounts.Add(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// inputError maps a validation failure to ErrEmptyField or ErrInvalidInput.
func inputError(verr *validation.RequestValidationError) error {
	if verr.HasTag("required") {
		return fmt.Errorf("%w: %s", account.ErrEmptyField, verr.Error())
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, verr.Error())
}

// Logout ends the session. It is a no-op when nobody is logged in.
func (c *Coordinator) Logout() {
	if c.current == nil {
		return
	}
	c.log().Info().Msg("logged out")
	c.current = nil
	c.ctx = logging.ContextWithLogger(context.Background(), c.logger)
}

func (c *Coordinator) startSession(acct *account.Account) {
	c.current = acct
	ctx := logging.ContextWithCorrelationID(context.Background(), logging.GenerateCorrelationID())
	c.ctx = logging.ContextWithLogger(ctx, c.logger.With().Str("username", acct.Username()).Logger())
}

// RequestSave rewrites the users file with every account. On failure the
// returned error wraps ErrSaveFailed and the in-memory state is unchanged.
func (c *Coordinator) RequestSave() error {
	return c.save(c.store.SaveAccounts)
}

func (c *Coordinator) save(write func(*account.Set) error) error {
	start := time.Now()
	err := write(c.accounts)
	metrics.RecordSave(time.Since(start), err)
	if err != nil {
		c.log().Warn().Err(err).Msg("saving accounts failed, changes kept in memory")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Close saves the account set at shutdown and ends the session. A store
// that also implements Flusher gets its final write through Flush.
func (c *Coordinator) Close() error {
	write := c.store.SaveAccounts
	if f, ok := c.store.(Flusher); ok {
		write = f.Flush
	}
	err := c.save(write)
	c.Logout()
	return err
}

func (c *Coordinator) requireAccount() (*account.Account, error) {
	if c.current == nil {
		return nil, ErrNotAuthenticated
	}
	return c.current, nil
}

// mutate runs a change against the current account and saves on success.
func (c *Coordinator) mutate(operation string, change func(*account.Account) error) error {
	acct, err := c.requireAccount()
	if err != nil {
		return err
	}
	err = change(acct)
	metrics.RecordMutation(operation, err)
	if err != nil {
		c.log().Debug().Str("operation", operation).Err(err).Msg("change rejected")
		return err
	}
	c.log().Info().Str("operation", operation).Msg("account updated")
	return c.RequestSave()
}

// AddToWatchlist lists a catalog movie on the current account's watchlist.
func (c *Coordinator) AddToWatchlist(movieID string) error {
	return c.mutate("watchlist_add", func(a *account.Account) error {
		if !c.catalog.Contains(strings.TrimSpace(movieID)) {
			return fmt.Errorf("%w: %q", ErrUnknownMovie, movieID)
		}
		return a.AddToWatchlist(movieID)
	})
}

// RemoveFromWatchlist removes a movie from the current account's watchlist.
// The ID need not be in the catalog, so stale entries can be cleaned up.
func (c *Coordinator) RemoveFromWatchlist(movieID string) error {
	return c.mutate("watchlist_remove", func(a *account.Account) error {
		return a.RemoveFromWatchlist(movieID)
	})
}

// MarkWatched records a catalog movie as watched on date (YYYY-MM-DD), or
// today when date is blank. It reports whether the movie left the watchlist.
func (c *Coordinator) MarkWatched(movieID, date string) (removed bool, err error) {
	err = c.mutate("mark_watched", func(a *account.Account) error {
		if !c.catalog.Contains(strings.TrimSpace(movieID)) {
			return fmt.Errorf("%w: %q", ErrUnknownMovie, movieID)
		}
		day := c.now()
		if strings.TrimSpace(date) != "" {
			parsed, perr := account.ParseDate(date)
			if perr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, perr)
			}
			day = parsed
		}
		var merr error
		removed, merr = a.MarkWatched(movieID, day)
		return merr
	})
	return removed, err
}

// passwordChange is validated before the new password is hashed.
type passwordChange struct {
	Password string `validate:"required,maxbytes=72"`
}

// ChangePassword replaces the current account's password after checking the old one.
func (c *Coordinator) ChangePassword(oldPassword, newPassword string) error {
	return c.mutate("change_password", func(a *account.Account) error {
		if !a.VerifyPassword(oldPassword) {
			return account.ErrInvalidCredentials
		}
		if verr := validation.ValidateStruct(&passwordChange{Password: newPassword}); verr != nil {
			return inputError(verr)
		}
		return a.SetPassword(newPassword)
	})
}

// SetRole changes the current account's tier.
func (c *Coordinator) SetRole(role account.Role) error {
	return c.mutate("set_role", func(a *account.Account) error {
		a.SetRole(role)
		return nil
	})
}

// Recommend ranks movies for the current account.
func (c *Coordinator) Recommend(ctx context.Context, count int, strategy recommend.Strategy) (*recommend.Response, error) {
	acct, err := c.requireAccount()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := c.engine.Recommend(ctx, recommend.Request{
		Account:  acct,
		Count:    count,
		Strategy: strategy,
	})
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	metrics.RecordRecommendation(resp.Strategy.String(), resp.Tier.String(), len(resp.Movies), time.Since(start))
	c.log().Info().
		Str("request_id", resp.Metadata.RequestID).
		Str("strategy", resp.Strategy.String()).
		Str("tier", resp.Tier.String()).
		Int("returned", len(resp.Movies)).
		Msg("recommendations served")
	return resp, nil
}

// IsSaveFailure reports whether err only means the change was not persisted.
func IsSaveFailure(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}
