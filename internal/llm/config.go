package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call, retries included.
	// Zero disables the limit.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-sonnet"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string // Optional. Used by tests and proxies.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 3 * time.Minute,
	}
}

// Config keys as read from viper or the environment. The environment
// variable for a key is EnvName(key).
const (
	KeyProvider         = "llm.provider"
	KeyTimeout          = "llm.timeout"
	KeyRetryAttempts    = "llm.retry_attempts"
	KeyAnthropicAPIKey  = "anthropic.api_key"
	KeyAnthropicModel   = "anthropic.model"
	KeyOpenAIAPIKey     = "openai.api_key"
	KeyOpenAIModel      = "openai.model"
	KeyOpenAIBaseURL    = "openai.base_url"
	KeyGeminiAPIKey     = "gemini.api_key"
	KeyGeminiModel      = "gemini.model"
	KeyOpenRouterAPIKey = "openrouter.api_key"
	KeyOpenRouterModel  = "openrouter.model"
)

// Keys lists every config key ConfigFromLookup reads.
var Keys = []string{
	KeyProvider, KeyTimeout, KeyRetryAttempts,
	KeyAnthropicAPIKey, KeyAnthropicModel,
	KeyOpenAIAPIKey, KeyOpenAIModel, KeyOpenAIBaseURL,
	KeyGeminiAPIKey, KeyGeminiModel,
	KeyOpenRouterAPIKey, KeyOpenRouterModel,
}

// EnvName returns the environment variable for a config key.
func EnvName(key string) string {
	return "AULA_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ConfigFromLookup builds a Config from a key lookup, falling back to
// defaults for empty values. Malformed durations or counts are errors.
func ConfigFromLookup(get func(key string) string) (Config, error) {
	cfg := DefaultConfig()

	set := func(key string, dst *string) {
		if v := strings.TrimSpace(get(key)); v != "" {
			*dst = v
		}
	}
	set(KeyProvider, &cfg.Provider)
	set(KeyAnthropicAPIKey, &cfg.Anthropic.APIKey)
	set(KeyAnthropicModel, &cfg.Anthropic.Model)
	set(KeyOpenAIAPIKey, &cfg.OpenAI.APIKey)
	set(KeyOpenAIModel, &cfg.OpenAI.Model)
	set(KeyOpenAIBaseURL, &cfg.OpenAI.BaseURL)
	set(KeyGeminiAPIKey, &cfg.Gemini.APIKey)
	set(KeyGeminiModel, &cfg.Gemini.Model)
	set(KeyOpenRouterAPIKey, &cfg.OpenRouter.APIKey)
	set(KeyOpenRouterModel, &cfg.OpenRouter.Model)

	if v := strings.TrimSpace(get(KeyTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvName(KeyTimeout), err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(get(KeyRetryAttempts)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s: want a positive integer, got %q", EnvName(KeyRetryAttempts), v)
		}
		cfg.Retry.MaxAttempts = n
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from AULA_* environment variables.
func ConfigFromEnv() (Config, error) {
	return ConfigFromLookup(func(key string) string {
		return os.Getenv(EnvName(key))
	})
}

// DiscoverConfig checks the standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and fills in the first key
// found on top of base. Returns false if none found.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("%s is required for the anthropic provider", EnvName(KeyAnthropicAPIKey))
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%s is required for the openai provider", EnvName(KeyOpenAIAPIKey))
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%s is required for the gemini provider", EnvName(KeyGeminiAPIKey))
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("%s is required for the openrouter provider", EnvName(KeyOpenRouterAPIKey))
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
