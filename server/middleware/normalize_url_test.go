// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		requestURL       string
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "Root path should not redirect",
			requestURL:     "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Path without trailing slash should not redirect",
			requestURL:     "/profile/api",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "Path with trailing slash should redirect",
			requestURL:       "/profile/api/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/profile/api",
		},
		{
			name:             "Query string is preserved",
			requestURL:       "/profile/?tab=1",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/profile?tab=1",
		},
		{
			name:             "Multiple trailing slashes",
			requestURL:       "/profile///",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/profile",
		},
		{
			name:             "Scheme-relative path is not an open redirect",
			requestURL:       "//evil.test/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := Wrap(NormalizeURL, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "http://example.test"+tt.requestURL, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if location := rr.Header().Get("Location"); location != tt.expectedLocation {
				t.Errorf("Expected location %q, got %q", tt.expectedLocation, location)
			}
		})
	}
}
