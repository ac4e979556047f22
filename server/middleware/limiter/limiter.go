// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/themegate/themegate/server/utils"
)

// Config holds the limiter parameters.
type Config struct {
	// Rate is the sustained number of requests per second per network.
	Rate float64
	// Burst is the bucket size.
	Burst int
	// PassIPs are IPs or CIDRs that are never limited.
	PassIPs []string
	// IPv4Prefix and IPv6Prefix group client addresses into networks.
	IPv4Prefix int
	IPv6Prefix int
	// CleanupInterval is how often idle buckets are dropped.
	CleanupInterval time.Duration
}

// entry is the bucket of one network.
type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter tracks one token bucket per client network.
//
// It is safe for concurrent use.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu            sync.Mutex
	networks      map[string]*entry
	lastCleanupAt time.Time
}

// New creates a Limiter.
func New(cfg Config) *Limiter {
	return &Limiter{
		cfg:      cfg,
		now:      time.Now,
		networks: make(map[string]*entry),
	}
}

// Evaluate is a middleware that rejects requests from networks that exceeded
// their rate with 429 Too Many Requests.
func (l *Limiter) Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ip := net.ParseIP(utils.ClientIP(r))
	if ip == nil {
		log.Warn().
			Str("remote_addr", r.RemoteAddr).
			Msg("Could not determine client IP, not rate limiting")

		next.ServeHTTP(w, r)

		return
	}

	if ipMatchesList(ip, l.cfg.PassIPs) {
		next.ServeHTTP(w, r)

		return
	}

	network := getNetwork(ip, l.cfg.IPv4Prefix, l.cfg.IPv6Prefix).String()

	allowed, retryAfter := l.allow(network)
	if !allowed {
		log.Info().
			Str("network", network).
			Dur("retry_after", retryAfter).
			Msg("Rate limit exceeded")

		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}

// allow takes a token from the bucket of network. When no token is
// available, it returns how long the client should wait.
func (l *Limiter) allow(network string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	l.cleanupLocked(now)

	e, ok := l.networks[network]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.networks[network] = e
	}

	e.lastSeen = now

	reservation := e.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, time.Second
	}

	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)

		return false, delay
	}

	return true, 0
}

// Len returns the number of tracked networks.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.networks)
}
