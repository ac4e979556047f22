// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/assets/views"
	"codeberg.org/themegate/themegate/server/request_context"
)

// BadRequestError signals that the client sent something the handler can't accept.
//
// The error handling middleware responds 400 with Message.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return "bad request: " + e.Message
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

// ErrNotFound is returned by handlers for resources that don't exist.
var ErrNotFound = errors.New("not found")

// NotFound is the fallback handler for unmatched paths.
func NotFound(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return nil
}

// ErrorPage writes the status code in the request context and renders the
// matching error page.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	ctx := request_context.FromRequest(r)

	data := views.ErrorData{
		Theme:     ctx.Theme,
		RequestID: ctx.RequestID,
	}

	var page templ.Component

	switch {
	case ctx.StatusCode == http.StatusNotFound:
		page = views.NotFound(data)
	case ctx.StatusCode == http.StatusBadRequest && ctx.RequestError != nil:
		data.Message = ctx.RequestError.Error()

		var badRequest *BadRequestError
		if errors.As(ctx.RequestError, &badRequest) {
			data.Message = badRequest.Message
		}

		page = views.BadRequest(data)
	default:
		page = views.InternalError(data)
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(ctx.StatusCode)

	if err := page.Render(r.Context(), w); err != nil {
		log.Err(err).
			Str("request_id", ctx.RequestID).
			Msg("Failed to render error page")
	}
}
