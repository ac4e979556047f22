// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
)

// Redirects returns a middleware that sends requests for an exact path in
// rules to its target with 307 Temporary Redirect, before routing.
//
// rules is copied, so later changes to the map don't affect the middleware.
func Redirects(rules map[string]string) Middleware {
	rules = maps.Clone(rules)

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		if target, ok := rules[r.URL.Path]; ok {
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)

			return
		}

		next.ServeHTTP(w, r)
	}
}
