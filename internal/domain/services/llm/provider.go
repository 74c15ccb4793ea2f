package llm

import (
	"context"

	"playground/internal/domain/models/llm"
)

// CompletionProvider performs a single text completion call.
// A non-success reply is returned as *domain.UpstreamError; anything else
// that goes wrong (transport, decoding) is returned as a plain error.
type CompletionProvider interface {
	Complete(ctx context.Context, apiKey string, req *llm.CompletionRequest) (*llm.CompletionResult, error)
}
