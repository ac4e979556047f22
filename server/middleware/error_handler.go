// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/config"
	"codeberg.org/themegate/themegate/core/audit"
	"codeberg.org/themegate/themegate/server/request_context"
	"codeberg.org/themegate/themegate/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered using an httptest.ResponseRecorder and any
// returned error is stored in the request context. Then:
//   - A routes.BadRequestError renders a 400 page with its message.
//   - routes.ErrNotFound, or a 404 written by the handler, renders the not-found page.
//   - Any other error without an HTTP error status code (status < 400) is an
//     unhandled internal error and renders a generic 500 page.
//   - In all other cases the buffered response is written to the client.
//
// Headers already set on w by earlier middleware are kept. Set-Cookie values
// from the handler are appended to them.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		_ = span.Begin(r.Context())

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)

		// Server-Timing is sent with the status line, so the metric must be
		// complete before anything is written to w.
		span.End()

		ctx.RequestError = err

		var badRequest *routes.BadRequestError

		switch {
		case errors.As(err, &badRequest):
			ctx.StatusCode = http.StatusBadRequest

			mergeCookies(w.Header(), recorder.Header())
			routes.ErrorPage(w, r)

		case errors.Is(err, routes.ErrNotFound) || recorder.Code == http.StatusNotFound:
			ctx.StatusCode = http.StatusNotFound

			routes.ErrorPage(w, r)

		case err != nil && recorder.Code < http.StatusBadRequest:
			ctx.StatusCode = http.StatusInternalServerError

			routes.ErrorPage(w, r)

		default:
			// This is a successful response or a handled error. We trust the recorder's output.
			ctx.StatusCode = recorder.Code

			copyHeaders(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			span.Size = recorder.Body.Len()

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).
					Str("request_id", ctx.RequestID).
					Msg("Failed to write response body")
			}
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// copyHeaders copies src into dst. Set-Cookie values are appended, every other
// header replaces what dst had.
func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if key == "Set-Cookie" {
			continue
		}

		dst[key] = values
	}

	mergeCookies(dst, src)
}

func mergeCookies(dst, src http.Header) {
	for _, value := range src.Values("Set-Cookie") {
		dst.Add("Set-Cookie", value)
	}
}
