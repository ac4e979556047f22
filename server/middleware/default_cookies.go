// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"codeberg.org/themegate/themegate/core/cookie"
	"codeberg.org/themegate/themegate/core/preference"
	"codeberg.org/themegate/themegate/core/untrusted"
)

// DefaultCookies returns a middleware that gives first-time visitors the
// cookies in defaults.
//
// For each default whose cookie the request lacks, a Set-Cookie header is
// added to the response. The request itself is passed on untouched, so
// handlers still see a first visit as one.
func DefaultCookies(defaults []preference.Default) Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		lookup := func(name cookie.CookieName) (string, bool) {
			return untrusted.LookupCookie(r, name)
		}

		for _, d := range preference.Missing(lookup, defaults) {
			untrusted.SetCookie(w, r, d.Name, d.Value)
		}

		next.ServeHTTP(w, r)
	}
}
