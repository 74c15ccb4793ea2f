package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"playground/internal/httputil"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id back to the caller
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs API calls once they
// finish. An incoming X-Request-ID is reused.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			r = httputil.WithRequestID(r, requestID)
			w.Header().Set(RequestIDHeader, requestID)

			rec := newResponseRecorder(w)
			next.ServeHTTP(rec, r)

			if !strings.HasPrefix(r.URL.Path, "/api") {
				return
			}
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			)
		})
	}
}
