package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCanedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "words-suggest")
	if p := PurposeFrom(ctx); p != "words-suggest" {
		t.Fatalf("expected 'words-suggest', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "anthropic cannot draw",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: true,
		},
		{
			name: "anthropic text with gemini images",
			cfg: Config{
				Provider:      "anthropic",
				ImageProvider: "gemini",
				Anthropic:     AnthropicConfig{APIKey: "sk-test"},
				Gemini:        GeminiConfig{APIKey: "g-test"},
			},
			wantErr: false,
		},
		{
			name: "image provider without key",
			cfg: Config{
				Provider:      "openrouter",
				ImageProvider: "openai",
				OpenRouter:    OpenRouterConfig{APIKey: "sk-or"},
			},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateMissingKeyType(t *testing.T) {
	err := Config{Provider: "gemini"}.Validate()
	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingAPIKey, got %T", err)
	}
	if missing.Provider != "gemini" {
		t.Fatalf("expected provider gemini, got %q", missing.Provider)
	}
}

func TestConfig_WithAPIKey(t *testing.T) {
	cfg := DefaultConfig().WithAPIKey("g-key")
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("expected gemini key to be set, got %q", cfg.Gemini.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = Config{Provider: "anthropic", ImageProvider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-img"}}.WithAPIKey("sk-ant")
	if cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("expected anthropic key, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.OpenAI.APIKey != "sk-img" {
		t.Fatalf("existing image key must be kept, got %q", cfg.OpenAI.APIKey)
	}
}

func TestConfigFromEnv(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "SPROUTS_GEMINI_API_KEY", "SPROUTS_IMAGE_PROVIDER"} {
		t.Setenv(k, "")
	}
	t.Setenv("SPROUTS_LLM_PROVIDER", "openai")
	t.Setenv("SPROUTS_OPENAI_API_KEY", "sk-env")
	t.Setenv("SPROUTS_OPENAI_IMAGE_MODEL", "gpt-image-1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.ImageModel != "gpt-image-1" {
		t.Fatalf("unexpected config: %+v", cfg.OpenAI)
	}
	if cfg.ImageBackend() != "openai" {
		t.Fatalf("expected image backend openai, got %q", cfg.ImageBackend())
	}
}

func TestConfigFromEnv_Discovers(t *testing.T) {
	for _, k := range []string{"SPROUTS_LLM_PROVIDER", "SPROUTS_GEMINI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Setenv("OPENAI_API_KEY", "sk-vendor")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-vendor" {
		t.Fatalf("expected discovered openai config, got provider %q", cfg.Provider)
	}
}

func TestFactory_AppliesStoredKey(t *testing.T) {
	stored := ""
	f := NewFactory(Config{Provider: "mock"}, nil, func(context.Context) (string, error) { return stored, nil })

	text, image, err := f.Clients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.ModelID() != "mock" || image.ImageModelID() != "mock-image" {
		t.Fatalf("unexpected clients %q %q", text.ModelID(), image.ImageModelID())
	}

	f = NewFactory(DefaultConfig(), nil, func(context.Context) (string, error) { return stored, nil })
	_, _, err = f.Clients(context.Background())
	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingAPIKey without a key, got %v", err)
	}

	stored = "g-key"
	cfg, err := f.Config(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("expected stored key applied, got %q", cfg.Gemini.APIKey)
	}
}
