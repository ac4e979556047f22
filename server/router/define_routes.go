// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"

	"codeberg.org/themegate/themegate/config"
	"codeberg.org/themegate/themegate/server/middleware"
	"codeberg.org/themegate/themegate/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
func (router *Router) DefineRoutes() {
	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Healthz))

	// Route handler that sets response cookies
	router.HandleFunc("GET /profile/api", middleware.CatchError(routes.ProfileAPI))

	// Settings routes
	router.HandleFunc("POST /settings/{action}", middleware.CatchError(routes.SettingsPOST))

	// Index page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.IndexPage))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	// Everything else
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))
}

func registerDebugRoutes(router *Router) {
	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.Handle("GET /debug/pprof/heap", pprof.Handler("heap"))
}

var _ http.Handler = (*Router)(nil)
