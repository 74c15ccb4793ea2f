package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"playground/internal/domain"
	"playground/internal/domain/models/llm"
	llmSvc "playground/internal/domain/services/llm"
	"playground/internal/httputil"
)

// GenerationHandler handles text generation requests
type GenerationHandler struct {
	service llmSvc.GenerationService
	errorResponder
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(service llmSvc.GenerationService, logger *slog.Logger, isProd bool) *GenerationHandler {
	return &GenerationHandler{
		service:        service,
		errorResponder: errorResponder{logger: logger, isProd: isProd},
	}
}

// Generate forwards a prompt to the completion API
// POST /api/generate
//
// Request body:
//
//	{
//	  "prompt": "Once upon a time",
//	  "parameters": {"model": "...", "max_tokens": 256, ...},
//	  "apiKey": "optional, overrides the server key"
//	}
//
// The 200 body carries text and usage for display, plus the raw upstream
// headers and body for the debug view.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req llm.GenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.handleError(w, r, &domain.ValidationError{
			Message: domain.MsgInvalidRequest,
			Details: decodeErrorDetails(err),
		})
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// decodeErrorDetails names the offending field when the body has the wrong shape
func decodeErrorDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: fmt.Sprintf("must be %s, got %s", typeErr.Type, typeErr.Value)}
	}
	return map[string]string{"body": err.Error()}
}
