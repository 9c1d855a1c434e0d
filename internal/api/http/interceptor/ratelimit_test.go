package interceptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func limitedRouter(l *RateLimiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(l.Middleware)
	router.HandleFunc("/login", okHandler).Name("auth.login")
	router.HandleFunc("/equipment", okHandler).Name("equipment.list")
	return router
}

func hit(router http.Handler, path, ip string) int {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	router := limitedRouter(NewRateLimiter(rdb, 2, time.Minute, FailOpen, "auth.login"))

	assert.Equal(t, http.StatusOK, hit(router, "/login", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(router, "/login", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "/login", "10.0.0.1"))

	// Other clients and unlisted routes are unaffected.
	assert.Equal(t, http.StatusOK, hit(router, "/login", "10.0.0.2"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(router, "/equipment", "10.0.0.1"))
	}

	ttl := mr.TTL("rl:auth.login:10.0.0.1")
	require.Greater(t, ttl, time.Duration(0))

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, hit(router, "/login", "10.0.0.1"))
}

func TestRateLimiter_FailPolicy(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()

	open := limitedRouter(NewRateLimiter(rdb, 1, time.Minute, FailOpen, "auth.login"))
	assert.Equal(t, http.StatusOK, hit(open, "/login", "10.0.0.1"))

	closed := limitedRouter(NewRateLimiter(rdb, 1, time.Minute, FailClosed, "auth.login"))
	assert.Equal(t, http.StatusServiceUnavailable, hit(closed, "/login", "10.0.0.1"))
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	router := limitedRouter(NewRateLimiter(rdb, 2, time.Minute, FailOpen, "auth.login"))

	var codes []int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
}

func TestRateLimiter_CounterAlwaysHasTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRateLimiter(rdb, 5, time.Minute, FailOpen, "auth.login")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "auth.login", "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Greater(t, mr.TTL("rl:auth.login:10.0.0.1"), time.Duration(0))
	}
	got, err := mr.Get("rl:auth.login:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	// The next window starts a new counter with its own TTL.
	mr.FastForward(time.Minute)
	ok, err := l.Allow(ctx, "auth.login", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, mr.TTL("rl:auth.login:10.0.0.1"), time.Duration(0))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	direct := NewRateLimiter(nil, 1, time.Minute, FailOpen)
	assert.Equal(t, "192.0.2.7", direct.clientIP(req))

	proxied := NewRateLimiter(nil, 1, time.Minute, FailOpen).TrustForwardedFor(true)
	assert.Equal(t, "203.0.113.9", proxied.clientIP(req))

	req.Header.Del("X-Forwarded-For")
	assert.Equal(t, "192.0.2.7", proxied.clientIP(req))
}
