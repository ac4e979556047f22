// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// maxLength bounds IDs accepted from upstream proxies.
const maxLength = 64

// Make makes a short ID with a 6 digit timestamp and 3 bytes of entropy.
func Make() string {
	return makeAt(time.Now())
}

func makeAt(t time.Time) string {
	entropy := [3]byte{'a', 'a', 'a'}

	_, _ = rand.Read(entropy[:])

	return maketime(t) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}

// Valid reports whether id is safe to reuse as a request ID:
// non-empty, at most 64 bytes and made of URL-safe base64 characters.
func Valid(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}

	for i := range len(id) {
		c := id[i]

		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}

	return true
}
