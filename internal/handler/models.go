package handler

import (
	"net/http"

	"playground/internal/catalog"
	"playground/internal/httputil"
)

// ModelsHandler serves the model catalog
type ModelsHandler struct {
	registry *catalog.Registry
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(registry *catalog.Registry) *ModelsHandler {
	return &ModelsHandler{registry: registry}
}

// ModelsResponse is the body of GET /api/models
type ModelsResponse struct {
	Provider string           `json:"provider"`
	Models   []catalog.Model  `json:"models"`
	Defaults catalog.Defaults `json:"defaults"`
}

// GetModels returns the selectable models and default parameters
// GET /api/models
func (h *ModelsHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, ModelsResponse{
		Provider: h.registry.Provider(),
		Models:   h.registry.Models(),
		Defaults: h.registry.Defaults(),
	})
}
