// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"

	"codeberg.org/themegate/themegate/server/request_context"
)

// WithRequestContext is a middleware that attaches a RequestContext to each HTTP request
// and echoes its request ID in the response.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	r = r.WithContext(request_context.WithRequestContext(r.Context(), r))

	w.Header().Set(request_context.RequestIDHeader, request_context.FromRequest(r).RequestID)

	next.ServeHTTP(w, r)
}
