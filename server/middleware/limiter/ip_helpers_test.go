// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"testing"
)

func TestGetNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ip       string
		v4, v6   int
		expected string
	}{
		{"203.0.113.7", 24, 48, "203.0.113.0/24"},
		{"203.0.113.7", 32, 48, "203.0.113.7/32"},
		{"2001:db8:abcd:12::1", 24, 48, "2001:db8:abcd::/48"},
		{"2001:db8:abcd:12::1", 24, 64, "2001:db8:abcd:12::/64"},
	}

	for _, tt := range tests {
		if got := getNetwork(net.ParseIP(tt.ip), tt.v4, tt.v6).String(); got != tt.expected {
			t.Errorf("getNetwork(%s, %d, %d) = %s, want %s", tt.ip, tt.v4, tt.v6, got, tt.expected)
		}
	}
}

func TestIPMatchesList(t *testing.T) {
	t.Parallel()

	list := []string{"10.0.0.0/8", "192.0.2.5", "not a cidr"}

	tests := []struct {
		ip       string
		expected bool
	}{
		{"10.1.2.3", true},
		{"192.0.2.5", true},
		{"192.0.2.6", false},
		{"203.0.113.7", false},
	}

	for _, tt := range tests {
		if got := ipMatchesList(net.ParseIP(tt.ip), list); got != tt.expected {
			t.Errorf("ipMatchesList(%s) = %v, want %v", tt.ip, got, tt.expected)
		}
	}
}
