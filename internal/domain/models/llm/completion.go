package llm

import (
	"encoding/json"
)

// GenerationParameters are the caller-supplied sampling settings.
// Pointers distinguish "absent" from a zero value so required fields can be
// rejected and optional ones defaulted explicitly.
type GenerationParameters struct {
	Model             string   `json:"model"`
	MaxTokens         *int     `json:"max_tokens"`
	Temperature       *float64 `json:"temperature"`
	TopP              *float64 `json:"top_p"`
	TopK              *int     `json:"top_k"`
	RepetitionPenalty *float64 `json:"repetition_penalty"`
	FrequencyPenalty  *float64 `json:"frequency_penalty,omitempty"` // Optional, defaults to 0
	Stop              *string  `json:"stop,omitempty"`              // Optional, null/"" mean no stop sequence
}

// GenerateRequest is the inbound body of POST /api/generate
type GenerateRequest struct {
	Prompt     string                `json:"prompt"`
	Parameters *GenerationParameters `json:"parameters"`
	APIKey     *string               `json:"apiKey,omitempty"` // Falls back to the server key when blank
}

// CompletionRequest is the body sent to the completion API.
// Stop is serialized as null when no stop sequence is set.
type CompletionRequest struct {
	Model             string  `json:"model"`
	Prompt            string  `json:"prompt"`
	MaxTokens         int     `json:"max_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	TopK              int     `json:"top_k"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	Stop              *string `json:"stop"`
	FrequencyPenalty  float64 `json:"frequency_penalty"`
}

// NewCompletionRequest builds the outbound body from already validated
// parameters, applying the defaults for optional fields.
func NewCompletionRequest(prompt string, p *GenerationParameters) *CompletionRequest {
	req := &CompletionRequest{
		Model:             p.Model,
		Prompt:            prompt,
		MaxTokens:         derefInt(p.MaxTokens),
		Temperature:       derefFloat(p.Temperature),
		TopP:              derefFloat(p.TopP),
		TopK:              derefInt(p.TopK),
		RepetitionPenalty: derefFloat(p.RepetitionPenalty),
		FrequencyPenalty:  derefFloat(p.FrequencyPenalty),
	}
	if p.Stop != nil && *p.Stop != "" {
		stop := *p.Stop
		req.Stop = &stop
	}
	return req
}

// Params returns the request as a generic map, the shape stored in history.
func (r *CompletionRequest) Params() map[string]interface{} {
	var stop interface{}
	if r.Stop != nil {
		stop = *r.Stop
	}
	return map[string]interface{}{
		"model":              r.Model,
		"prompt":             r.Prompt,
		"max_tokens":         r.MaxTokens,
		"temperature":        r.Temperature,
		"top_p":              r.TopP,
		"top_k":              r.TopK,
		"repetition_penalty": r.RepetitionPenalty,
		"stop":               stop,
		"frequency_penalty":  r.FrequencyPenalty,
	}
}

// Usage is the token accounting reported by the completion API
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResult is a successful completion, normalized.
// Headers and Body are the raw upstream reply for the debug view.
type CompletionResult struct {
	Text    string            `json:"text"`
	Headers map[string]string `json:"headers"`
	Body    json.RawMessage   `json:"body"`
	Usage   *Usage            `json:"usage,omitempty"`
}

// TotalTokens returns the reported total, 0 when usage is absent
func (r *CompletionResult) TotalTokens() int {
	if r.Usage == nil {
		return 0
	}
	return r.Usage.TotalTokens
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
