// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
)

func Healthz(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if _, err := w.Write([]byte("ok")); err != nil {
		return fmt.Errorf("failed to write health response: %w", err)
	}

	return nil
}
