package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"playground/internal/domain"
	"playground/internal/domain/models/llm"
	llmSvc "playground/internal/domain/services/llm"
)

// Client implements CompletionProvider for the Together.ai completions API.
// It issues exactly one request per call and never retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the given completions endpoint.
// A nil httpClient uses a client with transport defaults and no timeout.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ llmSvc.CompletionProvider = (*Client)(nil)

// Complete sends req with bearer authorization and normalizes the reply.
func (c *Client) Complete(ctx context.Context, apiKey string, req *llm.CompletionRequest) (*llm.CompletionResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	headers := flattenHeaders(resp.Header)

	c.logger.Debug("completion api responded",
		"model", req.Model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := rawJSON(raw)
		return nil, &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: errorMessage(body),
			Headers: headers,
			Body:    body,
		}
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var text string
	if len(out.Choices) > 0 {
		text = out.Choices[0].Text
	}

	return &llm.CompletionResult{
		Text:    text,
		Headers: headers,
		Body:    json.RawMessage(raw),
		Usage:   out.Usage,
	}, nil
}

// completionResponse is the subset of the completion reply we interpret.
// The full body is passed through untouched.
type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	Usage *llm.Usage `json:"usage"`
}

// flattenHeaders lowercases header names and joins repeated values
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return out
}

// rawJSON keeps a JSON body as-is and wraps anything else in a JSON string
func rawJSON(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(raw))
	return json.RawMessage(quoted)
}

// errorMessage extracts the upstream's own message. Together replies with
// either {"message": "..."} or {"error": {"message": "..."}}.
func errorMessage(body json.RawMessage) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.MsgUpstreamError
	}
	if envelope.Message != "" {
		return envelope.Message
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
		return plain
	}
	return domain.MsgUpstreamError
}
