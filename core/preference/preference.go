// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package preference decides which user preference cookies a response should
carry by default.

Decisions are pure: the request is only observed through a lookup function and
nothing here writes to it.
*/
package preference

import (
	"slices"

	"codeberg.org/themegate/themegate/core/cookie"
)

// DefaultTheme is the theme given to visitors that have never chosen one.
const DefaultTheme = "dark"

// Themes lists the accepted values for cookie.ThemeCookie.
var Themes = []string{"light", "dark", "system"}

// Default is a cookie value to set when the request doesn't carry the cookie.
type Default struct {
	Name  cookie.CookieName
	Value string
}

// Lookup returns the value of a request cookie and whether the request carries it.
type Lookup func(name cookie.CookieName) (string, bool)

// Defaults builds the default set for a configured theme.
//
// An empty theme falls back to DefaultTheme.
func Defaults(theme string) []Default {
	if theme == "" {
		theme = DefaultTheme
	}

	return []Default{{Name: cookie.ThemeCookie, Value: theme}}
}

// Missing returns the entries of defaults whose cookie is absent from the request,
// in declaration order.
//
// Only presence matters: a cookie sent with an empty value is left alone.
func Missing(lookup Lookup, defaults []Default) []Default {
	var missing []Default

	for _, d := range defaults {
		if _, ok := lookup(d.Name); !ok {
			missing = append(missing, d)
		}
	}

	return missing
}

// IsValidTheme reports whether theme is one of Themes.
func IsValidTheme(theme string) bool {
	return slices.Contains(Themes, theme)
}
