// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
	"sync/atomic"

	"codeberg.org/themegate/themegate/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Themegate-Version is added dynamically in SetResponseHeaders.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"no-referrer"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(baseCSP, "; ") + ";"},
	}

	baseCSP = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	defaultPermissionsPolicy = []string{
		"camera=()",
		"geolocation=()",
		"microphone=()",
		"payment=()",
		"usb=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	// Copy the slices so that handlers can't modify baseHeaders through w.
	for key, values := range baseHeaders {
		headers[key] = append([]string(nil), values...)
	}

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	headers.Set("Cache-Control", "private, no-cache")
	headers.Set("Themegate-Version", config.BuildVersion)

	next.ServeHTTP(w, r)
}

// firstDevResponse is cleared after the first response in development.
var firstDevResponse atomic.Bool

func init() {
	firstDevResponse.Store(true)
}

// clear cache in development
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse.CompareAndSwap(true, false) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}
