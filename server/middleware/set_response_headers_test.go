// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/themegate/themegate/config"
)

func TestSetResponseHeaders(t *testing.T) {
	t.Parallel()

	handler := Wrap(SetResponseHeaders, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers may override defaults without touching the shared map.
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Add("X-Frame-Options", "SAMEORIGIN")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Equal(t, config.BuildVersion, rr.Header().Get("Themegate-Version"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	assert.Equal(t, []string{"DENY"}, baseHeaders["X-Frame-Options"])
}
