// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// rateLimiter is a sliding-window per-client request limiter. It keeps the
// request timestamps of each client inside the current window and rejects a
// request once the quota is reached. The clock is a struct field so tests
// can drive the window deterministically.
type rateLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	now         func() time.Time

	requests  map[string][]time.Time
	lastPrune time.Time
}

func newRateLimiter(window time.Duration, maxRequests int) *rateLimiter {
	return &rateLimiter{
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
	}
}

// allow records a request for key and reports whether it is within quota.
// Timestamps older than the window are dropped on every call, so memory is
// bounded by the quota per active client; clients that went idle for a full
// window are evicted from the map entirely.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.pruneLocked(now, cutoff)

	recent := rl.requests[key][:0]
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.maxRequests {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, now)
	return true
}

// pruneLocked drops clients whose every recorded request has aged out of the
// window. Runs at most once per window so allow stays O(quota) on the hot
// path. Caller must hold rl.mu.
func (rl *rateLimiter) pruneLocked(now, cutoff time.Time) {
	if now.Sub(rl.lastPrune) < rl.window {
		return
	}
	rl.lastPrune = now

	for key, stamps := range rl.requests {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(rl.requests, key)
		}
	}
}

// retryAfterSeconds is the back-off hint sent with HTTP 429.
func (rl *rateLimiter) retryAfterSeconds() int {
	return int((rl.window + time.Second - 1) / time.Second)
}

func (h *Handler) withRateLimit(limiter *rateLimiter, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !limiter.allow(ip) {
				logger.FromRequest(r).Warn().
					Str("limiter", name).
					Str("ip", ip).
					Msg("rate limit exceeded")

				writeJSON(w, http.StatusTooManyRequests, models.RateLimitedResponse{
					Message:    app.MsgRateLimited,
					RetryAfter: limiter.retryAfterSeconds(),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the remote address without the port. RemoteAddr is
// trusted as-is; forwarding headers are spoofable and are only meaningful
// behind a proxy this service does not assume.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
