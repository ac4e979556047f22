// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/url"
	"time"

	"codeberg.org/themegate/themegate/core/cookie"
	"codeberg.org/themegate/themegate/server/utils"
)

// SameSite=Lax allows cookies on top-level navigations, so preferences apply
// when users arrive from external links.
const CookieSameSite = http.SameSiteLaxMode

// Cookies will expire in 30 days from when they are set.
const cookieMaxAge = 30 * 24 * time.Hour

// Clear a cookie by setting its expiration date to this
var cookieExpireDelete = time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC)

func createCookieUnencoded(name cookie.CookieName, value string, expires time.Time, isSecure bool) http.Cookie {
	return http.Cookie{
		Name:     string(name),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   isSecure,
		HttpOnly: cookie.IsHttpOnly(name),
		SameSite: CookieSameSite,
	}
}

// GetCookie returns the unescaped value of a request cookie.
//
// Missing or malformed cookies read as "".
func GetCookie(r *http.Request, name cookie.CookieName) string {
	value, _ := LookupCookie(r, name)

	return value
}

// LookupCookie returns the unescaped value of a request cookie and whether
// the request carries it. A cookie sent with an empty value is present.
// A value that fails to unescape is treated as absent.
func LookupCookie(r *http.Request, name cookie.CookieName) (string, bool) {
	c, err := r.Cookie(string(name))
	if err != nil {
		return "", false
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", false
	}

	return value, true
}

// SetCookie appends a Set-Cookie header for name to the response.
//
// Only the response is written; r is used to decide the Secure attribute.
// An empty value clears the cookie instead.
func SetCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName, value string) {
	if value == "" {
		ClearCookie(w, r, name)
	} else {
		cookie := createCookieUnencoded(
			name, url.QueryEscape(value),
			time.Now().Add(cookieMaxAge),
			utils.IsConnectionSecure(r))
		http.SetCookie(w, &cookie)
	}
}

func ClearCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName) {
	cookie := createCookieUnencoded(
		name, "",
		cookieExpireDelete,
		utils.IsConnectionSecure(r))
	http.SetCookie(w, &cookie)
}

func ClearAllCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range cookie.AllCookieNames {
		ClearCookie(w, r, name)
	}
}
