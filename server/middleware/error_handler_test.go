// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/themegate/themegate/server/request_context"
	"codeberg.org/themegate/themegate/server/routes"
)

// createTestRequest creates a test HTTP request with request context.
func createTestRequest(t *testing.T) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	return req.WithContext(request_context.WithRequestContext(req.Context(), req))
}

// TestCatchError_Success tests CatchError when handler succeeds.
func TestCatchError_Success(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "success"}`))

		return nil
	})
	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rr.Code)
	}

	if body := rr.Body.String(); body != `{"status": "success"}` {
		t.Errorf("Expected body %q, got %q", `{"status": "success"}`, body)
	}

	if ctx := request_context.FromRequest(req); ctx.RequestError != nil {
		t.Errorf("Expected no error in context, got %v", ctx.RequestError)
	}
}

// TestCatchError_HandlerError tests CatchError when handler returns an error.
func TestCatchError_HandlerError(t *testing.T) {
	t.Parallel()

	testError := errors.New("test handler error")
	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		return testError
	})
	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode, "expect 500 status code")
	assert.NotContains(t, rr.Body.String(), testError.Error())

	ctx := request_context.FromRequest(req)
	assert.ErrorIs(t, ctx.RequestError, testError)
}

func TestCatchError_BadRequest(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("settings: %w", routes.NewBadRequestError("Invalid theme"))
	})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, createTestRequest(t))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid theme")
}

func TestCatchError_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler func(w http.ResponseWriter, r *http.Request) error
	}{
		{"fallback handler", routes.NotFound},
		{"sentinel error", func(w http.ResponseWriter, r *http.Request) error { return routes.ErrNotFound }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			CatchError(tt.handler).ServeHTTP(rr, createTestRequest(t))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Contains(t, rr.Body.String(), "Page Not Found")
		})
	}
}

// TestCatchError_KeepsEarlierCookies checks that cookies set by earlier
// middleware survive cookies set by the handler.
func TestCatchError_KeepsEarlierCookies(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		http.SetCookie(w, &http.Cookie{Name: "resultsPerPage", Value: "20"})
		w.Header().Set("Content-Type", "text/html")

		return nil
	})

	rr := httptest.NewRecorder()
	http.SetCookie(rr, &http.Cookie{Name: "theme", Value: "dark"})
	rr.Header().Set("Content-Type", "text/plain")

	handler.ServeHTTP(rr, createTestRequest(t))

	names := []string{}
	for _, c := range rr.Result().Cookies() {
		names = append(names, c.Name)
	}

	require.ElementsMatch(t, []string{"theme", "resultsPerPage"}, names)
	assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
}

func TestCatchError_ServerTimingHasDuration(t *testing.T) {
	t.Parallel()

	handler := servertiming.Middleware(CatchError(func(w http.ResponseWriter, r *http.Request) error {
		time.Sleep(time.Millisecond)

		_, _ = w.Write([]byte("ok"))

		return nil
	}), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, createTestRequest(t))

	timing := rr.Header().Get(servertiming.HeaderKey)
	require.Contains(t, timing, "user$GET$")

	var userMetric string

	for _, metric := range strings.Split(timing, ",") {
		if strings.Contains(metric, "user$") {
			userMetric = metric
		}
	}

	assert.Contains(t, userMetric, "dur=")
}
