// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/account"
	"github.com/tomtom215/cinetrack/internal/catalog"
)

// Store reads the catalog and users files and rewrites the users file.
type Store struct {
	moviesPath string
	usersPath  string
	logger     zerolog.Logger

	// CreateMissingUsers makes LoadAccounts start from an empty set, and write
	// an empty users file, when the users file does not exist yet.
	CreateMissingUsers bool
}

// NewStore creates a store for the two data files.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(moviesPath, usersPath string, logger zerolog.Logger) *Store {
	return &Store{
		moviesPath: moviesPath,
		usersPath:  usersPath,
		logger:     logger,
	}
}

// MoviesPath returns the catalog file path.
func (s *Store) MoviesPath() string { return s.moviesPath }

// UsersPath returns the users file path.
func (s *Store) UsersPath() string { return s.usersPath }

// LoadCatalog reads the catalog file.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	f, err := os.Open(s.moviesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrSourceUnavailable, s.moviesPath, err)
	}
	defer func() { _ = f.Close() }()

	cat, err := LoadCatalog(f, s.logger.With().Str("file", s.moviesPath).Logger())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.moviesPath, err)
	}
	s.logger.Info().Str("file", s.moviesPath).Int("movies", cat.Len()).Msg("catalog loaded")
	return cat, nil
}

// LoadAccounts reads the users file.
func (s *Store) LoadAccounts() (*account.Set, error) {
	f, err := os.Open(s.usersPath)
	if errors.Is(err, fs.ErrNotExist) && s.CreateMissingUsers {
		set := account.NewSet()
		if err := s.SaveAccounts(set); err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", ErrSourceUnavailable, s.usersPath, err)
		}
		s.logger.Info().Str("file", s.usersPath).Msg("created empty users file")
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrSourceUnavailable, s.usersPath, err)
	}
	defer func() { _ = f.Close() }()

	set, err := LoadAccounts(f, s.logger.With().Str("file", s.usersPath).Logger())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.usersPath, err)
	}
	s.logger.Info().Str("file", s.usersPath).Int("accounts", set.Len()).Msg("accounts loaded")
	return set, nil
}

// SaveAccounts rewrites the users file. The set is written to a temporary
// file in the same directory which then replaces the users file, so readers
// see either the old or the new contents, never a partial write.
func (s *Store) SaveAccounts(set *account.Set) (err error) {
	dir := filepath.Dir(s.usersPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.usersPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := WriteAccounts(tmp, set); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.usersPath); err != nil {
		return fmt.Errorf("replace %s: %w", s.usersPath, err)
	}

	s.logger.Debug().Str("file", s.usersPath).Int("accounts", set.Len()).Msg("accounts saved")
	return nil
}
