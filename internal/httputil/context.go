package httputil

import (
	"context"
	"net/http"
)

type requestIDKey struct{}

// WithRequestID returns r with id attached to its context
func WithRequestID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
}

// GetRequestID returns the id set by WithRequestID, or ""
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// LogAttrs are the slog key/value pairs identifying r in error logs
func LogAttrs(r *http.Request) []any {
	return []any{
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", GetRequestID(r),
	}
}
