package config

const (
	// DefaultHistoryLimit is the number of history records returned when the
	// caller does not ask for a valid positive limit.
	DefaultHistoryLimit = 50

	// MaxRequestBodyBytes caps inbound JSON bodies. Prompts are plain text,
	// so 10MB leaves plenty of room.
	MaxRequestBodyBytes = 10 << 20
)

// Generation parameter bounds (inclusive).
const (
	MinMaxTokens = 1
	MaxMaxTokens = 4096

	MinTemperature = 0.0
	MaxTemperature = 2.0

	MinTopP = 0.0
	MaxTopP = 1.0

	MinTopK = 1
	MaxTopK = 100

	MinRepetitionPenalty = 1.0
	MaxRepetitionPenalty = 2.0

	MinFrequencyPenalty = -2.0
	MaxFrequencyPenalty = 2.0
)
