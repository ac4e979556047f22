// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/themegate/themegate/config"
	"codeberg.org/themegate/themegate/core/preference"
	"codeberg.org/themegate/themegate/server/middleware"
	"codeberg.org/themegate/themegate/server/middleware/limiter"
	"codeberg.org/themegate/themegate/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain configured in config.Global.
func (router *Router) RegisterMiddleware() error {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(set_request_context.WithRequestContext) // needed for everything else

	if config.Global.Compression.Enabled {
		compress, err := middleware.Compress()
		if err != nil {
			return err
		}

		router.Use(compress)
	}

	router.Use(middleware.NormalizeURL) // handle trailing slashes

	if len(config.Global.Redirects) > 0 {
		router.Use(middleware.Redirects(config.Global.Redirects))
	}

	router.Use(middleware.SetResponseHeaders) // all pages need this

	if config.Global.Limiter.Enabled {
		cfg := config.Global.Limiter

		router.Use(limiter.New(limiter.Config{
			Rate:            cfg.Rate,
			Burst:           cfg.Burst,
			PassIPs:         cfg.PassIPs,
			IPv4Prefix:      cfg.IPv4Prefix,
			IPv6Prefix:      cfg.IPv6Prefix,
			CleanupInterval: cfg.CleanupInterval,
		}).Evaluate)
	}

	router.Use(middleware.DefaultCookies(preference.Defaults(config.Global.Preferences.DefaultTheme)))

	return nil
}
