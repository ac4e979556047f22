// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// renderPage writes component as an HTML response.
func renderPage(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := component.Render(r.Context(), w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}
