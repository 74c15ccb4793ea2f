package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"playground/internal/config"
)

// ParseJSON decodes JSON from the request body into the given destination.
// It limits the request body size to prevent abuse and provides clear error messages.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)

	decoder := json.NewDecoder(r.Body)
	// Unknown fields are ignored; the UI sends extra display-only settings.
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// QueryInt parses a positive integer query parameter.
// Missing, non-numeric or non-positive values yield defaultValue.
func QueryInt(r *http.Request, key string, defaultValue int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
