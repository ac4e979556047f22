// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"time"

	"github.com/rs/zerolog/log"
)

// cleanupLocked drops buckets that have been idle for a full CleanupInterval.
//
// It runs at most once per CleanupInterval. l.mu must be held.
func (l *Limiter) cleanupLocked(now time.Time) {
	if l.cfg.CleanupInterval <= 0 {
		return
	}

	if l.lastCleanupAt.IsZero() {
		l.lastCleanupAt = now

		return
	}

	if now.Sub(l.lastCleanupAt) < l.cfg.CleanupInterval {
		return
	}

	l.lastCleanupAt = now

	removed := 0

	for network, e := range l.networks {
		if now.Sub(e.lastSeen) >= l.cfg.CleanupInterval {
			delete(l.networks, network)

			removed++
		}
	}

	log.Debug().
		Int("removed", removed).
		Int("remaining", len(l.networks)).
		Msg("limiter cleanup")
}
