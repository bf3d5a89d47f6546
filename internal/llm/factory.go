package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/sprouts/internal/store"
)

// NewProvider creates a text Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.retryPolicy())

	return retried, nil
}

// NewImageGenerator creates an ImageGenerator from configuration, wrapped
// the same way as NewProvider.
func NewImageGenerator(ctx context.Context, cfg Config, eventRepo store.EventRepo) (ImageGenerator, error) {
	var base ImageGenerator
	var err error

	backend := cfg.ImageBackend()
	switch backend {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockImageGenerator(), nil
	case "anthropic", "openrouter":
		return nil, &ErrUnsupported{Provider: backend, Operation: "image generation"}
	default:
		return nil, fmt.Errorf("unknown image provider: %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s image provider: %w", backend, err)
	}

	logged := WithImageLogging(base, eventRepo)
	return WithImageRetry(logged, cfg.retryPolicy()), nil
}

// KeySource returns a stored credential that overrides the configured
// key. An empty string means none is stored.
type KeySource func(ctx context.Context) (string, error)

// Factory builds clients on demand so a credential saved while the app is
// running takes effect on the next request.
type Factory struct {
	cfg       Config
	eventRepo store.EventRepo
	keys      KeySource

	mu    sync.Mutex
	built bool
	cfgAt Config
	text  Provider
	image ImageGenerator
}

// NewFactory creates a Factory. keys may be nil.
func NewFactory(cfg Config, eventRepo store.EventRepo, keys KeySource) *Factory {
	return &Factory{cfg: cfg, eventRepo: eventRepo, keys: keys}
}

// Config returns the configuration with the stored credential applied.
func (f *Factory) Config(ctx context.Context) (Config, error) {
	cfg := f.cfg
	if f.keys == nil {
		return cfg, nil
	}
	key, err := f.keys(ctx)
	if err != nil {
		return cfg, err
	}
	if key != "" {
		cfg = cfg.WithAPIKey(key)
	}
	return cfg, nil
}

// Clients returns the text and image clients, rebuilding them when the
// effective configuration changed since the last call.
func (f *Factory) Clients(ctx context.Context) (Provider, ImageGenerator, error) {
	cfg, err := f.Config(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.built && f.cfgAt == cfg {
		return f.text, f.image, nil
	}

	text, err := NewProvider(ctx, cfg, f.eventRepo)
	if err != nil {
		return nil, nil, err
	}
	image, err := NewImageGenerator(ctx, cfg, f.eventRepo)
	if err != nil {
		return nil, nil, err
	}

	f.built, f.cfgAt, f.text, f.image = true, cfg, text, image
	return text, image, nil
}

// ProviderWithKey builds an uncached text provider that uses key, for
// checking a credential before it is saved. Retries are disabled so a
// bad key fails fast.
func (f *Factory) ProviderWithKey(ctx context.Context, key string) (Provider, error) {
	cfg := f.cfg.WithAPIKey(key)
	cfg.Retry.MaxAttempts = 1
	if err := cfg.validateProvider(cfg.Provider); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, f.eventRepo)
}
