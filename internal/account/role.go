// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"math"
	"strings"
)

// Role is the account tier. It decides the watchlist and recommendation quotas.
type Role int

const (
	// RoleBasic is the default tier.
	RoleBasic Role = iota
	// RolePremium lifts the watchlist cap and doubles the recommendation cap.
	RolePremium
)

// Unlimited is the watchlist limit of tiers without a cap.
const Unlimited = math.MaxInt

const (
	basicWatchlistLimit        = 10
	basicRecommendationLimit   = 5
	premiumRecommendationLimit = 10
)

// ParseRole maps a persisted role string to a Role. The comparison is
// trimmed and case-insensitive; anything unrecognized is RoleBasic.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), "PREMIUM") {
		return RolePremium
	}
	return RoleBasic
}

// String returns the persisted name of the role.
func (r Role) String() string {
	if r == RolePremium {
		return "PREMIUM"
	}
	return "BASIC"
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// WatchlistLimit returns the maximum watchlist size for the tier.
func (r Role) WatchlistLimit() int {
	if r == RolePremium {
		return Unlimited
	}
	return basicWatchlistLimit
}

// RecommendationLimit returns the maximum recommendations per request for the tier.
func (r Role) RecommendationLimit() int {
	if r == RolePremium {
		return premiumRecommendationLimit
	}
	return basicRecommendationLimit
}
