package llm

import (
	"fmt"

	"playground/internal/config"
	"playground/internal/domain/models/llm"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateGenerateRequest checks presence, type and range of every field.
// Errors are keyed by JSON field name.
func validateGenerateRequest(req *llm.GenerateRequest) error {
	if req == nil {
		return validation.Errors{"body": validation.ErrRequired}
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Prompt, validation.Required.Error("Prompt is required")),
		validation.Field(&req.Parameters, validation.NotNil, validation.By(validateParameters)),
	)
}

func validateParameters(value interface{}) error {
	p, ok := value.(*llm.GenerationParameters)
	if !ok || p == nil {
		return nil
	}

	return validation.ValidateStruct(p,
		validation.Field(&p.Model, validation.Required),
		validation.Field(&p.MaxTokens, validation.NotNil, between(config.MinMaxTokens, config.MaxMaxTokens)),
		validation.Field(&p.Temperature, validation.NotNil, between(config.MinTemperature, config.MaxTemperature)),
		validation.Field(&p.TopP, validation.NotNil, between(config.MinTopP, config.MaxTopP)),
		validation.Field(&p.TopK, validation.NotNil, between(config.MinTopK, config.MaxTopK)),
		validation.Field(&p.RepetitionPenalty, validation.NotNil, between(config.MinRepetitionPenalty, config.MaxRepetitionPenalty)),
		validation.Field(&p.FrequencyPenalty, between(config.MinFrequencyPenalty, config.MaxFrequencyPenalty)),
	)
}

// between checks an inclusive range on an optional number.
// ozzo's Min/Max treat zero as empty and skip it.
func between[T int | float64](lo, hi T) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, ok := value.(*T)
		if !ok || v == nil {
			return nil
		}
		if *v < lo || *v > hi {
			return validation.NewError("validation_out_of_range",
				fmt.Sprintf("must be between %v and %v", lo, hi))
		}
		return nil
	})
}
