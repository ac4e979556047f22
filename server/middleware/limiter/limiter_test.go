// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for deterministic tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, cfg Config) (*Limiter, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}

	l := New(cfg)
	l.now = clock.Now

	return l, clock
}

func serve(l *Limiter, remoteAddr string) *httptest.ResponseRecorder {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr

	rr := httptest.NewRecorder()
	l.Evaluate(rr, req, handler)

	return rr
}

func TestEvaluate_BurstThenLimit(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, Config{Rate: 1, Burst: 2, IPv4Prefix: 24, IPv6Prefix: 48})

	assert.Equal(t, http.StatusOK, serve(l, "203.0.113.7:1000").Code)
	assert.Equal(t, http.StatusOK, serve(l, "203.0.113.7:1001").Code)

	rr := serve(l, "203.0.113.7:1002")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))

	// Same /24 shares the bucket.
	assert.Equal(t, http.StatusTooManyRequests, serve(l, "203.0.113.99:1000").Code)

	// A different network has its own bucket.
	assert.Equal(t, http.StatusOK, serve(l, "198.51.100.1:1000").Code)

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, serve(l, "203.0.113.7:1003").Code)
}

func TestEvaluate_PassList(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, Config{
		Rate: 1, Burst: 1, IPv4Prefix: 24, IPv6Prefix: 48,
		PassIPs: []string{"203.0.113.0/24"},
	})

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(l, "203.0.113.7:1000").Code)
	}

	assert.Zero(t, l.Len(), "pass-listed clients get no bucket")
}

func TestEvaluate_UnknownClientPassesThrough(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, Config{Rate: 1, Burst: 1, IPv4Prefix: 24, IPv6Prefix: 48})

	assert.Equal(t, http.StatusOK, serve(l, "not-an-ip").Code)
	assert.Equal(t, http.StatusOK, serve(l, "not-an-ip").Code)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, Config{
		Rate: 10, Burst: 10, IPv4Prefix: 24, IPv6Prefix: 48,
		CleanupInterval: time.Minute,
	})

	serve(l, "203.0.113.7:1000")
	serve(l, "198.51.100.1:1000")
	require.Equal(t, 2, l.Len())

	clock.Advance(30 * time.Second)
	serve(l, "198.51.100.1:1000")

	clock.Advance(40 * time.Second)
	serve(l, "198.51.100.1:1000")

	// 203.0.113.0/24 was idle for 70s, 198.51.100.0/24 was just seen.
	assert.Equal(t, 1, l.Len())
}
