package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry serves the model catalog and default parameters.
// It is read-only after construction.
type Registry struct {
	catalog ProviderCatalog
}

// NewRegistry loads the embedded Together catalog
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/together.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read together catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from catalog YAML
func Parse(data []byte) (*Registry, error) {
	var catalog ProviderCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	if len(catalog.Models) == 0 {
		return nil, fmt.Errorf("catalog for %q lists no models", catalog.Provider)
	}
	if err := catalog.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog defaults: %w", err)
	}

	return &Registry{catalog: catalog}, nil
}

// Provider returns the provider the catalog describes
func (r *Registry) Provider() string {
	return r.catalog.Provider
}

// Models returns the models in catalog order
func (r *Registry) Models() []Model {
	out := make([]Model, len(r.catalog.Models))
	copy(out, r.catalog.Models)
	return out
}

// Defaults returns the default generation parameters
func (r *Registry) Defaults() Defaults {
	return r.catalog.Defaults
}
