package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"playground/internal/domain/models/llm"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req llm.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Prompt != "hello" {
			t.Errorf("prompt = %q", req.Prompt)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"world","headers":{},"body":{"choices":[]},"usage":{"total_tokens":4}}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL+"/", nil).Generate(context.Background(), &llm.GenerateRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Text != "world" || result.TotalTokens() != 4 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad model","status":500,"body":{"message":"bad model"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Generate(context.Background(), &llm.GenerateRequest{Prompt: "p"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "bad model" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if apiErr.Body["status"] != float64(500) {
		t.Errorf("body = %v", apiErr.Body)
	}
}

func TestAPIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL, nil).ClearHistory(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "gateway down" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestListHistory_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantQuery string
	}{
		{"explicit limit", 5, "limit=5"},
		{"server default", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("query = %q, want %q", r.URL.RawQuery, tt.wantQuery)
				}
				_, _ = w.Write([]byte(`{"history":[{"id":2,"prompt":"b","model":"m","timestamp":"2024-01-01T00:00:00Z","tokensUsed":3,"parameters":{},"response":"x"}]}`))
			}))
			defer srv.Close()

			records, err := New(srv.URL, nil).ListHistory(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("ListHistory returned error: %v", err)
			}
			if len(records) != 1 || records[0].ID != 2 || records[0].TokensUsed != 3 {
				t.Errorf("unexpected records: %+v", records)
			}
		})
	}
}

func TestClearHistory(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_, _ = w.Write([]byte(`{"message":"History cleared successfully"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL, nil).ClearHistory(context.Background()); err != nil {
		t.Fatalf("ClearHistory returned error: %v", err)
	}
	if method != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", method)
	}
}

func TestModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"provider":"together","models":[{"id":"m1","display_name":"M1","context_window":10}],"defaults":{"model":"m1","max_tokens":256}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, nil).Models(context.Background())
	if err != nil {
		t.Fatalf("Models returned error: %v", err)
	}
	if resp.Provider != "together" || len(resp.Models) != 1 || resp.Models[0].ID != "m1" || resp.Defaults.MaxTokens != 256 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
