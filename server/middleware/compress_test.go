// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	t.Parallel()

	compress, err := Compress()
	require.NoError(t, err)

	body := strings.Repeat("themegate ", 200)
	handler := Wrap(compress, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, body)
	}))

	t.Run("gzip accepted", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)

		decoded, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, body, string(decoded))
	})

	t.Run("identity", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, body, rr.Body.String())
	})
}
