// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/themegate/themegate/server/utils"
)

func TestIsConnectionSecure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		proto      string
		tls        bool
		expected   bool
	}{
		{"Direct TLS", "203.0.113.7:443", "", true, true},
		{"Plain from public address", "203.0.113.7:80", "", false, false},
		{"Forwarded https from private proxy", "10.1.2.3:80", "https", false, true},
		{"Forwarded https from loopback proxy", "127.0.0.1:80", "https", false, true},
		{"Forwarded https from public address", "203.0.113.7:80", "https", false, false},
		{"Unparseable remote address", "nonsense", "https", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr

			if tt.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tt.proto)
			}

			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}

			if got := utils.IsConnectionSecure(r); got != tt.expected {
				t.Errorf("utils.IsConnectionSecure() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{"Direct connection", "203.0.113.7:1234", nil, "203.0.113.7"},
		{"Untrusted proxy headers ignored", "203.0.113.7:1234", map[string]string{"X-Real-IP": "1.1.1.1"}, "203.0.113.7"},
		{"X-Real-IP from private proxy", "10.0.0.1:1234", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"Last X-Forwarded-For from private proxy", "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "1.1.1.1, 198.51.100.4"}, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr

			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := utils.ClientIP(r); got != tt.expected {
				t.Errorf("utils.ClientIP() = %q, want %q", got, tt.expected)
			}
		})
	}
}
