// Cinetrack - Movie Watchlist Tracking and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package account

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// Legacy digests come from earlier versions of the users file. They are only
// verified, never produced for new passwords, and get replaced by a bcrypt
// hash after the next successful login.

const legacySeed = "CPT111"

var legacyDigestPattern = regexp.MustCompile(`^[a-fA-F0-9]{16,64}$`)

func isLegacyDigest(s string) bool {
	return legacyDigestPattern.MatchString(s)
}

// legacyDigest reproduces the positional mixing scheme: every output byte is
// (password[i mod len] + seed[i mod len] + 7i) mod 256 over
// len(password)+len(seed) positions. The password is trimmed first and an
// empty password is replaced with "default".
func legacyDigest(password string) string {
	p := []rune(strings.TrimSpace(password))
	if len(p) == 0 {
		p = []rune("default")
	}
	seed := []rune(legacySeed)

	out := make([]byte, len(p)+len(seed))
	for i := range out {
		out[i] = byte((int(p[i%len(p)]) + int(seed[i%len(seed)]) + i*7) % 256)
	}
	return hex.EncodeToString(out)
}
