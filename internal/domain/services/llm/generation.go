package llm

import (
	"context"

	"playground/internal/domain/models/llm"
)

// GenerationService validates a generation request, resolves the API key,
// calls the completion API and records the outcome in history.
type GenerationService interface {
	Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.CompletionResult, error)
}
