package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"playground/internal/domain"
	"playground/internal/httputil"
)

// errorResponder converts service errors to HTTP responses.
// Internal error messages are only echoed outside production.
type errorResponder struct {
	logger *slog.Logger
	isProd bool
}

// handleError converts domain errors to HTTP responses
func (e errorResponder) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		upstreamErr   *domain.UpstreamError
		httpErr       domain.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		httputil.RespondErrorWithDetails(w, validationErr.StatusCode(), validationErr.Message, validationErr.Details)
	case errors.As(err, &upstreamErr):
		httputil.RespondErrorWithExtras(w, upstreamErr.StatusCode(), upstreamErr.Message, map[string]interface{}{
			"status":  upstreamErr.Status,
			"headers": upstreamErr.Headers,
			"body":    upstreamErr.Body,
		})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	default:
		e.logger.Error("unexpected error", append([]any{"error", err}, httputil.LogAttrs(r)...)...)
		e.respondInternal(w, err)
	}
}

func (e errorResponder) respondInternal(w http.ResponseWriter, err error) {
	var extras map[string]interface{}
	if !e.isProd {
		extras = map[string]interface{}{"message": err.Error()}
	}
	httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, domain.MsgInternalError, extras)
}
