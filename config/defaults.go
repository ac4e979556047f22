// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"time"

	"codeberg.org/themegate/themegate/core/preference"
)

const (
	// Default number of results per page.
	defaultResultsPerPage = 20

	// Default limiter rate in requests per second.
	defaultLimiterRate = 10
	// Default limiter burst size.
	defaultLimiterBurst = 40
	// Default interval between sweeps of idle limiters, in minutes.
	defaultLimiterCleanupMinutes = 10
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8383"

	cfg.Preferences.DefaultTheme = preference.DefaultTheme
	cfg.Preferences.ResultsPerPage = defaultResultsPerPage

	cfg.Redirects = map[string]string{}

	cfg.Compression.Enabled = true

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.Rate = defaultLimiterRate
	cfg.Limiter.Burst = defaultLimiterBurst
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48
	cfg.Limiter.CleanupInterval = defaultLimiterCleanupMinutes * time.Minute
}
