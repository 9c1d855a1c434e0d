package interceptor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"toala-backend/internal/logger"
)

// FailPolicy decides what happens when the limiter store is unreachable.
type FailPolicy int

const (
	// FailOpen lets the request through.
	FailOpen FailPolicy = iota
	// FailClosed answers 503.
	FailClosed
)

// RateLimiter is a fixed-window counter per route and client IP kept in
// redis. Only routes listed in routes are limited.
type RateLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	policy FailPolicy
	routes map[string]bool

	trustForwardedFor bool
}

func NewRateLimiter(rdb redis.Cmdable, limit int, window time.Duration, policy FailPolicy, routes ...string) *RateLimiter {
	set := make(map[string]bool, len(routes))
	for _, r := range routes {
		set[r] = true
	}
	return &RateLimiter{rdb: rdb, limit: limit, window: window, policy: policy, routes: set}
}

// TrustForwardedFor keys clients on the first X-Forwarded-For entry instead
// of the socket peer. Only enable it behind a proxy that overwrites the header.
func (l *RateLimiter) TrustForwardedFor(trust bool) *RateLimiter {
	l.trustForwardedFor = trust
	return l
}

// Allow counts one hit for id on resource and reports whether it is within
// the limit.
func (l *RateLimiter) Allow(ctx context.Context, resource, id string) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// The window key is created with its TTL in the same transaction as the
	// increment, so a counter never outlives its window.
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetArgs(ctx, key, 0, redis.SetArgs{Mode: "NX", TTL: l.window})
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	cnt, err := incr.Result()
	if err != nil {
		return false, err
	}
	return cnt <= int64(l.limit), nil
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeName(r)
		if !l.routes[route] {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := l.Allow(r.Context(), route, l.clientIP(r))
		if err != nil {
			if l.policy == FailClosed {
				logger.WarnContext(r.Context(), "Rate limit store unavailable, rejecting", "route", route, "error", err)
				writeDetail(w, http.StatusServiceUnavailable, "Rate limit unavailable")
				return
			}
			logger.WarnContext(r.Context(), "Rate limit store unavailable, allowing", "route", route, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(l.window.Seconds())))
			writeDetail(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.trustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
