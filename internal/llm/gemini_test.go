package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-flash-image", "gemini-2.5-flash-image"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiTextTruncated(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonMaxTokens,
			Content:      &genai.Content{Role: "model"},
		}},
	}
	_, err := geminiText(result)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("geminiText() error = %v, want ErrMaxTokensExceeded", err)
	}

	result.Candidates[0].Content.Parts = []*genai.Part{{Text: "sun"}}
	text, err := geminiText(result)
	if err != nil || text != "sun" {
		t.Fatalf("geminiText() = %q, %v", text, err)
	}
}

func TestThinkingConfig(t *testing.T) {
	cfg := thinkingConfig("gemini-2.5-flash")
	if cfg == nil || cfg.ThinkingBudget == nil || *cfg.ThinkingBudget != 0 {
		t.Fatalf("thinkingConfig(flash) = %+v, want zero budget", cfg)
	}
	if cfg := thinkingConfig("gemini-2.5-pro"); cfg != nil {
		t.Fatalf("thinkingConfig(pro) = %+v, want nil", cfg)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
			"color": map[string]any{"type": "string", "enum": []any{"red", "blue", "green"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"name", "color"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["name"].Type != "STRING" {
		t.Fatalf("expected STRING for name, got %s", schema.Properties["name"].Type)
	}
	if schema.Properties["count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for count, got %s", schema.Properties["count"].Type)
	}
	if len(schema.Properties["color"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["color"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name:  "unauthorized",
			err:   genai.APIError{Code: 401, Message: "unauthenticated"},
			check: func(err error) bool { var e *ErrAuth; return errors.As(err, &e) },
		},
		{
			name:  "bad api key is a 400",
			err:   genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"},
			check: func(err error) bool { var e *ErrAuth; return errors.As(err, &e) },
		},
		{
			name:  "quota exhausted",
			err:   genai.APIError{Code: 429, Message: "You exceeded your current quota", Status: "RESOURCE_EXHAUSTED"},
			check: func(err error) bool { var e *ErrQuotaExceeded; return errors.As(err, &e) },
		},
		{
			name:  "rate limited",
			err:   genai.APIError{Code: 429, Message: "slow down"},
			check: func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:  "pointer form wrapped",
			err:   fmt.Errorf("call: %w", &genai.APIError{Code: 503}),
			check: func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:  "other bad request",
			err:   genai.APIError{Code: 400, Message: "prompt blocked"},
			check: func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:  "network",
			err:   errors.New("dial tcp: connection refused"),
			check: func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGeminiError(tt.err)
			if !tt.check(got) {
				t.Fatalf("mapGeminiError(%v) = %T", tt.err, got)
			}
		})
	}
}
