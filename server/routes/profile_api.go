// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/core/cookie"
	"codeberg.org/themegate/themegate/core/preference"
	"codeberg.org/themegate/themegate/core/untrusted"
	"codeberg.org/themegate/themegate/server/request_context"
)

// profileResultsPerPage is the page size stored by ProfileAPI.
const profileResultsPerPage = "20"

// ProfileAPI reads request headers and writes preference cookies directly.
//
// Only the presence of the Authorization header is logged, never its value.
func ProfileAPI(w http.ResponseWriter, r *http.Request) error {
	log.Debug().
		Str("request_id", request_context.FromRequest(r).RequestID).
		Bool("authorization", r.Header.Get("Authorization") != "").
		Msg("Profile API request")

	untrusted.SetCookie(w, r, cookie.ResultsPerPageCookie, profileResultsPerPage)
	untrusted.SetCookie(w, r, cookie.ThemeCookie, preference.DefaultTheme)

	w.Header().Set("Content-Type", "text/html")

	if _, err := w.Write([]byte("<h1>Profile API data</h1>")); err != nil {
		return fmt.Errorf("failed to write profile response: %w", err)
	}

	return nil
}
