// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost for new hashes. Zero means bcrypt.DefaultCost.
var hashCost atomic.Int32

// SetHashCost sets the bcrypt cost used for new password hashes.
// Existing hashes keep the cost they were created with.
func SetHashCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	hashCost.Store(int32(cost)) //nolint:gosec // bounded by bcrypt.MaxCost above
	return nil
}

func currentCost() int {
	if c := hashCost.Load(); c != 0 {
		return int(c)
	}
	return bcrypt.DefaultCost
}

// HashPassword returns a bcrypt hash of the password.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyField
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), currentCost())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// isBcryptHash reports whether s looks like a modular-crypt bcrypt hash.
func isBcryptHash(s string) bool {
	if !strings.HasPrefix(s, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

// normalizeStored turns a stored credential into the form kept in memory:
// bcrypt hashes unchanged, legacy digests lowercased, anything else treated
// as a plaintext seed and hashed. An empty value stays empty and never verifies.
func normalizeStored(stored string) (string, error) {
	switch {
	case stored == "":
		return "", nil
	case isBcryptHash(stored):
		return stored, nil
	case isLegacyDigest(stored):
		return strings.ToLower(stored), nil
	default:
		return HashPassword(stored)
	}
}

// verify checks candidate against a stored credential of any supported form.
func verify(stored, candidate string) bool {
	switch {
	case stored == "":
		return false
	case isBcryptHash(stored):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	case isLegacyDigest(stored):
		return strings.EqualFold(legacyDigest(candidate), stored)
	default:
		return false
	}
}
