package domain

import (
	"encoding/json"
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Error messages shown to callers
const (
	MsgInvalidRequest = "Invalid request parameters"
	MsgAPIKeyMissing  = "API key not found. Please set TOGETHER_API_KEY in .env file or provide in request."
	MsgInternalError  = "An unexpected error occurred"
	MsgUpstreamError  = "Error from Together.ai API"
)

// Sentinel errors - use with errors.Is()
var (
	ErrValidation = errors.New("validation failed")
	ErrKeyMissing = errors.New("api key missing")
	ErrUpstream   = errors.New("upstream request failed")
)

// ValidationError indicates a malformed or out-of-range request.
// Details carries field-level messages and is rendered as-is.
type ValidationError struct {
	Message string
	Details interface{}
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// KeyMissingError indicates neither the request nor the server supplied an API key.
type KeyMissingError struct{}

func (e *KeyMissingError) Error() string { return MsgAPIKeyMissing }
func (e *KeyMissingError) StatusCode() int { return http.StatusBadRequest }
func (e *KeyMissingError) Is(target error) bool { return target == ErrKeyMissing }

// UpstreamError is a non-success reply from the completion API.
// Headers and Body are kept verbatim for the debug view.
type UpstreamError struct {
	Status  int
	Message string
	Headers map[string]string
	Body    json.RawMessage
}

func (e *UpstreamError) Error() string { return e.Message }
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// StatusCode is always 400 whatever the upstream replied with.
// The upstream status stays available in Status.
func (e *UpstreamError) StatusCode() int { return http.StatusBadRequest }
