package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details interface{}            `json:"details,omitempty"`
	Extra   map[string]interface{} `json:"-"`
}

// MarshalJSON implements custom JSON marshaling to include Extra fields at top level
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"error": e.Error,
	}

	if e.Details != nil {
		m["details"] = e.Details
	}

	for k, v := range e.Extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}

	return json.Marshal(m)
}

// RespondError writes an error response with just a message
func RespondError(w http.ResponseWriter, status int, message string) {
	writeError(w, status, ErrorResponse{Error: message})
}

// RespondErrorWithDetails writes an error response with a details object
func RespondErrorWithDetails(w http.ResponseWriter, status int, message string, details interface{}) {
	writeError(w, status, ErrorResponse{Error: message, Details: details})
}

// RespondErrorWithExtras writes an error with additional top-level fields
func RespondErrorWithExtras(w http.ResponseWriter, status int, message string, extras map[string]interface{}) {
	writeError(w, status, ErrorResponse{Error: message, Extra: extras})
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	payload, err := json.Marshal(body)
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
