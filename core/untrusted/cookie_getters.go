// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"strconv"

	"codeberg.org/themegate/themegate/config"
	"codeberg.org/themegate/themegate/core/cookie"
	"codeberg.org/themegate/themegate/core/preference"
)

// GetTheme returns the theme the user chose.
//
// The value is retrieved from cookies if valid, otherwise falls back
// to the configured default.
func GetTheme(r *http.Request) string {
	theme := GetCookie(r, cookie.ThemeCookie)
	if !preference.IsValidTheme(theme) {
		return config.Global.Preferences.DefaultTheme
	}

	return theme
}

// GetResultsPerPage returns the page size the user chose, or the configured
// default when the cookie is missing or not a positive integer.
func GetResultsPerPage(r *http.Request) int {
	n, err := strconv.Atoi(GetCookie(r, cookie.ResultsPerPageCookie))
	if err != nil || n <= 0 {
		return config.Global.Preferences.ResultsPerPage
	}

	return n
}
