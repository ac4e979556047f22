// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/themegate/themegate/config"
)

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if name != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	return r
}

//nolint:paralleltest // mutates config.Global
func TestGetTheme(t *testing.T) {
	config.Global.Preferences.DefaultTheme = "dark"

	assert.Equal(t, "light", GetTheme(requestWithCookie("theme", "light")))
	assert.Equal(t, "system", GetTheme(requestWithCookie("theme", "system")))
	assert.Equal(t, "dark", GetTheme(requestWithCookie("", "")))
	assert.Equal(t, "dark", GetTheme(requestWithCookie("theme", "neon")))
}

//nolint:paralleltest // mutates config.Global
func TestGetResultsPerPage(t *testing.T) {
	config.Global.Preferences.ResultsPerPage = 20

	assert.Equal(t, 50, GetResultsPerPage(requestWithCookie("resultsPerPage", "50")))
	assert.Equal(t, 20, GetResultsPerPage(requestWithCookie("", "")))
	assert.Equal(t, 20, GetResultsPerPage(requestWithCookie("resultsPerPage", "-3")))
	assert.Equal(t, 20, GetResultsPerPage(requestWithCookie("resultsPerPage", "many")))
}
