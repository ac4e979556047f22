// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// gzipMinSize is the smallest body worth compressing.
const gzipMinSize = 512

// Compress returns a middleware that gzips responses for clients that accept it.
func Compress() (Middleware, error) {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %w", err)
	}

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrapper(next).ServeHTTP(w, r)
	}, nil
}
