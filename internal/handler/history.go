package handler

import (
	"log/slog"
	"net/http"

	"playground/internal/config"
	"playground/internal/domain/services"
	"playground/internal/httputil"
)

// HistoryHandler handles generation history requests
type HistoryHandler struct {
	service services.HistoryService
	errorResponder
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service services.HistoryService, logger *slog.Logger, isProd bool) *HistoryHandler {
	return &HistoryHandler{
		service:        service,
		errorResponder: errorResponder{logger: logger, isProd: isProd},
	}
}

// ListHistory returns recent generations, newest first
// GET /api/history?limit=N
// Invalid or non-positive limits use the default.
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := httputil.QueryInt(r, "limit", config.DefaultHistoryLimit)

	records, err := h.service.ListHistory(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"history": records,
	})
}

// ClearHistory removes all history
// DELETE /api/history
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "History cleared successfully",
	})
}
