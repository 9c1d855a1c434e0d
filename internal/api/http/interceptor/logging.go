package interceptor

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"toala-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id, exposes it on the response and logs
// one line per request once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", clientIP(r),
		}
		if rec.status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "HTTP request", args...)
			return
		}
		logger.InfoContext(ctx, "HTTP request", args...)
	})
}
