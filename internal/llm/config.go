package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all generative service configuration.
type Config struct {
	// Provider selects the text backend.
	// Values: "gemini", "openai", "openrouter", "anthropic", "mock"
	Provider string

	// ImageProvider selects the drawing backend. Empty means the same as
	// Provider. Values: "gemini", "openai", "mock"
	ImageProvider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single request
	// (including retries). Default: 60s, images are slow.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string
	Model      string // Default: "gpt-4o-mini"
	ImageModel string // Default: "dall-e-3"
	BaseURL    string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey     string
	Model      string // Default: "gemini-flash"
	ImageModel string // Default: "gemini-flash-image"
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

	// AttemptTimeout bounds each attempt. Zero means no bound.
	AttemptTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		Gemini: GeminiConfig{
			Model:      "gemini-flash",
			ImageModel: "gemini-flash-image",
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
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. When no SPROUTS_* key is set, the
// standard vendor variables are probed via DiscoverConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	explicit := false

	if p := os.Getenv("SPROUTS_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		explicit = true
	}
	if p := os.Getenv("SPROUTS_IMAGE_PROVIDER"); p != "" {
		cfg.ImageProvider = p
	}

	if k := os.Getenv("SPROUTS_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SPROUTS_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("SPROUTS_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SPROUTS_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if m := os.Getenv("SPROUTS_OPENAI_IMAGE_MODEL"); m != "" {
		cfg.OpenAI.ImageModel = m
	}
	if u := os.Getenv("SPROUTS_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("SPROUTS_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SPROUTS_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("SPROUTS_GEMINI_IMAGE_MODEL"); m != "" {
		cfg.Gemini.ImageModel = m
	}

	if k := os.Getenv("SPROUTS_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("SPROUTS_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if !explicit && cfg.APIKey() == "" {
		if found, ok := DiscoverConfig(); ok {
			found.ImageProvider = cfg.ImageProvider
			return found
		}
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

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

// retryPolicy returns Retry with the request timeout applied per attempt.
func (c Config) retryPolicy() RetryConfig {
	rc := c.Retry
	if rc.AttemptTimeout == 0 {
		rc.AttemptTimeout = c.Timeout
	}
	return rc
}

// ImageBackend returns the provider used for drawing.
func (c Config) ImageBackend() string {
	if c.ImageProvider != "" {
		return c.ImageProvider
	}
	return c.Provider
}

// APIKey returns the key configured for the text provider.
func (c Config) APIKey() string {
	return c.keyFor(c.Provider)
}

func (c Config) keyFor(provider string) string {
	switch provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// WithAPIKey returns a copy of c whose text provider uses key. The image
// provider gets the same key when it is the same backend.
func (c Config) WithAPIKey(key string) Config {
	c.setKey(c.Provider, key)
	if c.ImageBackend() == c.Provider {
		return c
	}
	if c.keyFor(c.ImageBackend()) == "" {
		c.setKey(c.ImageBackend(), key)
	}
	return c
}

func (c *Config) setKey(provider, key string) {
	switch provider {
	case "anthropic":
		c.Anthropic.APIKey = key
	case "openai":
		c.OpenAI.APIKey = key
	case "gemini":
		c.Gemini.APIKey = key
	case "openrouter":
		c.OpenRouter.APIKey = key
	}
}

// Validate checks that the selected providers have their required API key set.
func (c Config) Validate() error {
	if err := c.validateProvider(c.Provider); err != nil {
		return err
	}
	switch c.ImageBackend() {
	case "gemini", "openai", "mock":
	default:
		return fmt.Errorf("%s cannot generate images; set SPROUTS_IMAGE_PROVIDER to gemini or openai", c.ImageBackend())
	}
	return c.validateProvider(c.ImageBackend())
}

func (c Config) validateProvider(provider string) error {
	switch provider {
	case "anthropic", "openai", "gemini", "openrouter":
		if c.keyFor(provider) == "" {
			return fmt.Errorf("an API key is required for the %s provider: %w", provider, &ErrMissingAPIKey{Provider: provider})
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", provider)
	}
	return nil
}
