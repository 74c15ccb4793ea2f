package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"playground/internal/domain"
	"playground/internal/httputil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func panicking(w http.ResponseWriter, r *http.Request) {
	panic("Test error")
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name        string
		isProd      bool
		wantMessage interface{}
	}{
		{"dev echoes the panic message", false, "Test error"},
		{"prod hides the panic message", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Recovery(discardLogger(), tt.isProd)(http.HandlerFunc(panicking))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", w.Code)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != domain.MsgInternalError {
				t.Errorf("error = %v", body["error"])
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %v", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestRecovery_ResponseAlreadyStarted(t *testing.T) {
	h := Recovery(discardLogger(), false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late failure")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want original 202", w.Code)
	}
	if w.Body.String() != "partial" {
		t.Errorf("body = %q, want untouched partial body", w.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var seenID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = httputil.GetRequestID(r)
		w.WriteHeader(http.StatusTeapot)
	})
	h := RequestLogger(discardLogger())(inner)

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

		got := w.Header().Get(RequestIDHeader)
		if got == "" {
			t.Fatal("expected request id header")
		}
		if got != seenID {
			t.Errorf("context id %q does not match header %q", seenID, got)
		}
		if w.Code != http.StatusTeapot {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) != "abc-123" || seenID != "abc-123" {
			t.Errorf("incoming id not reused: header=%q context=%q", w.Header().Get(RequestIDHeader), seenID)
		}
	})
}

func TestChain_RecoveryInsideLogger(t *testing.T) {
	h := RequestLogger(discardLogger())(Recovery(discardLogger(), true)(http.HandlerFunc(panicking)))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected request id on recovered response")
	}
}
