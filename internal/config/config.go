package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultCompletionsURL is the Together.ai text completion endpoint
const DefaultCompletionsURL = "https://api.together.xyz/v1/completions"

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Upstream configuration
	TogetherAPIKey string // Default key used when a request does not carry its own
	CompletionsURL string
	// Logging
	LogDir      string // Empty disables file logging
	LogMaxFiles int
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		Environment:    getEnv("ENVIRONMENT", getEnv("NODE_ENV", "dev")),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		TogetherAPIKey: strings.TrimSpace(os.Getenv("TOGETHER_API_KEY")),
		CompletionsURL: getEnv("TOGETHER_API_URL", DefaultCompletionsURL),
		LogDir:         os.Getenv("LOG_DIR"),
		LogMaxFiles:    getEnvInt("LOG_MAX_FILES", 10),
	}
}

// IsProd reports whether internal error details must be hidden from callers
func (c *Config) IsProd() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// Validate checks that the process can start with this configuration.
// Required variables are reported together so a single restart fixes them all.
func (c *Config) Validate() error {
	var missing []string
	if c.TogetherAPIKey == "" {
		missing = append(missing, "TOGETHER_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("Missing required environment variables: %s. "+
			"Please check your .env file or environment configuration.", strings.Join(missing, ", "))
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.CompletionsURL, validation.Required, is.URL),
		validation.Field(&c.LogMaxFiles, validation.Min(1)),
	)
}

// CORSOriginList splits CORS_ORIGINS into the list rs/cors expects
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
