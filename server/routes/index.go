// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/themegate/themegate/assets/views"
	"codeberg.org/themegate/themegate/core/untrusted"
	"codeberg.org/themegate/themegate/server/request_context"
)

// IndexPage shows the preferences that apply to this request.
//
// On a first visit the theme cookie is only set on the way out, so the
// configured default is shown.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	return renderPage(w, r, views.Index(views.IndexData{
		Theme:          request_context.FromRequest(r).Theme,
		ResultsPerPage: untrusted.GetResultsPerPage(r),
	}))
}
