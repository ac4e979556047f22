// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

// Cookie names defined as constants.
//
// NOTE: We don't use the `__Host-` prefix so that cookies keep working on
// non-HTTPS deployments where the localhost exemption doesn't apply.
const (
	// User preference cookies.
	ThemeCookie          CookieName = "theme"
	ResultsPerPageCookie CookieName = "resultsPerPage"
)

// AllCookieNames defines all cookies that can be set by the user.
var AllCookieNames = []CookieName{
	ThemeCookie,
	ResultsPerPageCookie,
}

// httpOnlyCookies lists cookies that scripts never need to read.
var httpOnlyCookies = map[CookieName]bool{
	ResultsPerPageCookie: true,
}

// IsHttpOnly reports whether the cookie should be hidden from client scripts.
//
// The theme cookie stays readable so that the page can apply it before paint.
func IsHttpOnly(name CookieName) bool {
	return httpOnlyCookies[name]
}
