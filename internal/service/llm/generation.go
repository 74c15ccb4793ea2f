package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"playground/internal/domain"
	"playground/internal/domain/models"
	"playground/internal/domain/models/llm"
	"playground/internal/domain/repositories"
	llmSvc "playground/internal/domain/services/llm"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// generationService implements the GenerationService interface
type generationService struct {
	provider      llmSvc.CompletionProvider
	historyRepo   repositories.HistoryRepository
	defaultAPIKey string
	logger        *slog.Logger
}

// NewGenerationService creates a new generation service.
// defaultAPIKey is used for requests that do not carry their own key.
func NewGenerationService(
	provider llmSvc.CompletionProvider,
	historyRepo repositories.HistoryRepository,
	defaultAPIKey string,
	logger *slog.Logger,
) llmSvc.GenerationService {
	return &generationService{
		provider:      provider,
		historyRepo:   historyRepo,
		defaultAPIKey: strings.TrimSpace(defaultAPIKey),
		logger:        logger,
	}
}

// Generate validates req, calls the completion API and records the result.
// History is written only after the upstream call has returned.
func (s *generationService) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.CompletionResult, error) {
	if err := validateGenerateRequest(req); err != nil {
		var internalErr validation.InternalError
		if errors.As(err, &internalErr) {
			return nil, fmt.Errorf("validate request: %w", err)
		}
		return nil, &domain.ValidationError{Message: domain.MsgInvalidRequest, Details: err}
	}

	apiKey, err := s.resolveAPIKey(req.APIKey)
	if err != nil {
		return nil, err
	}

	outbound := llm.NewCompletionRequest(req.Prompt, req.Parameters)

	result, err := s.provider.Complete(ctx, apiKey, outbound)
	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			s.logger.Warn("completion api returned an error",
				"model", outbound.Model,
				"status", upErr.Status,
				"message", upErr.Message,
			)
			return nil, err
		}
		return nil, fmt.Errorf("call completion api: %w", err)
	}

	record, err := s.historyRepo.Save(ctx, &models.HistoryRecord{
		Prompt:     req.Prompt,
		Model:      outbound.Model,
		Timestamp:  time.Now(),
		TokensUsed: result.TotalTokens(),
		Parameters: outbound.Params(),
		Response:   result.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}

	s.logger.Info("generation completed",
		"history_id", record.ID,
		"model", outbound.Model,
		"tokens_used", record.TokensUsed,
	)

	return result, nil
}

// resolveAPIKey prefers a non-blank key from the request over the server default
func (s *generationService) resolveAPIKey(provided *string) (string, error) {
	if provided != nil && strings.TrimSpace(*provided) != "" {
		return *provided, nil
	}
	if s.defaultAPIKey != "" {
		return s.defaultAPIKey, nil
	}
	return "", &domain.KeyMissingError{}
}
