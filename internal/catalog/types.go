package catalog

import (
	"playground/internal/config"
	"playground/internal/domain/models/llm"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Model describes one selectable completion model
type Model struct {
	// Model identifier (set during YAML unmarshaling)
	ID string `yaml:"-" json:"id"`

	DisplayName   string `yaml:"display_name" json:"display_name"`
	ContextWindow int    `yaml:"context_window" json:"context_window"`
}

// Defaults are the generation parameters a fresh playground starts with
type Defaults struct {
	Model             string  `yaml:"model" json:"model"`
	MaxTokens         int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature       float64 `yaml:"temperature" json:"temperature"`
	TopP              float64 `yaml:"top_p" json:"top_p"`
	TopK              int     `yaml:"top_k" json:"top_k"`
	RepetitionPenalty float64 `yaml:"repetition_penalty" json:"repetition_penalty"`
	FrequencyPenalty  float64 `yaml:"frequency_penalty" json:"frequency_penalty"`
}

// Validate checks the defaults against the accepted parameter bounds
func (d Defaults) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Model, validation.Required),
		validation.Field(&d.MaxTokens, validation.Required, validation.Min(config.MinMaxTokens), validation.Max(config.MaxMaxTokens)),
		validation.Field(&d.Temperature, validation.Min(config.MinTemperature), validation.Max(config.MaxTemperature)),
		validation.Field(&d.TopP, validation.Min(config.MinTopP), validation.Max(config.MaxTopP)),
		validation.Field(&d.TopK, validation.Required, validation.Min(config.MinTopK), validation.Max(config.MaxTopK)),
		validation.Field(&d.RepetitionPenalty, validation.Required, validation.Min(config.MinRepetitionPenalty), validation.Max(config.MaxRepetitionPenalty)),
		validation.Field(&d.FrequencyPenalty, validation.Min(config.MinFrequencyPenalty), validation.Max(config.MaxFrequencyPenalty)),
	)
}

// Parameters converts the defaults to a request parameter set
func (d Defaults) Parameters() *llm.GenerationParameters {
	return &llm.GenerationParameters{
		Model:             d.Model,
		MaxTokens:         &d.MaxTokens,
		Temperature:       &d.Temperature,
		TopP:              &d.TopP,
		TopK:              &d.TopK,
		RepetitionPenalty: &d.RepetitionPenalty,
		FrequencyPenalty:  &d.FrequencyPenalty,
	}
}

// ProviderCatalog is the content of one provider YAML file
type ProviderCatalog struct {
	Provider string   `yaml:"provider" json:"provider"`
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Models   []Model  `yaml:"-" json:"models"` // Ordered slice, populated by custom unmarshaler
}

// UnmarshalYAML implements custom YAML unmarshaling to preserve model order from YAML file
func (p *ProviderCatalog) UnmarshalYAML(node *yaml.Node) error {
	type plain struct {
		Provider string           `yaml:"provider"`
		Defaults Defaults         `yaml:"defaults"`
		Models   map[string]Model `yaml:"models"`
	}
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	p.Provider = decoded.Provider
	p.Defaults = decoded.Defaults

	// Mapping node content alternates key, value
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value != "models" {
			continue
		}
		modelsNode := node.Content[i+1]
		for j := 0; j < len(modelsNode.Content); j += 2 {
			id := modelsNode.Content[j].Value
			if model, ok := decoded.Models[id]; ok {
				model.ID = id
				p.Models = append(p.Models, model)
			}
		}
		break
	}

	return nil
}
