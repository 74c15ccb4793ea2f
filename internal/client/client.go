package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"playground/internal/domain/models"
	"playground/internal/domain/models/llm"
	"playground/internal/handler"
)

// DefaultTimeout bounds a single call to the playground server
const DefaultTimeout = 2 * time.Minute

// APIError is a non-2xx reply from the playground server.
// Body holds the decoded JSON error object.
type APIError struct {
	StatusCode int
	Message    string
	Body       map[string]interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the playground HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
// A nil httpClient uses one with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Generate runs one completion through the server
func (c *Client) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.CompletionResult, error) {
	var result llm.CompletionResult
	if err := c.do(ctx, http.MethodPost, "/api/generate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListHistory returns the newest records first. limit <= 0 leaves the
// server default in place.
func (c *Client) ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	path := "/api/history"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var resp struct {
		History []models.HistoryRecord `json:"history"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// ClearHistory removes every history record
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/history", nil, nil)
}

// Models returns the server's model catalog
func (c *Client) Models(ctx context.Context) (*handler.ModelsResponse, error) {
	var resp handler.ModelsResponse
	if err := c.do(ctx, http.MethodGet, "/api/models", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	if err := json.Unmarshal(data, &apiErr.Body); err != nil {
		if text := strings.TrimSpace(string(data)); text != "" {
			apiErr.Message = text
		}
		return apiErr
	}
	if msg, ok := apiErr.Body["error"].(string); ok && msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}
