package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash":       "gemini-2.5-flash",
	"gemini-flash-lite":  "gemini-2.5-flash-lite",
	"gemini-pro":         "gemini-2.5-pro",
	"gemini-flash-image": "gemini-2.5-flash-image",
}

// GeminiProvider implements Provider and ImageGenerator using the Google
// Gemini SDK. Text and images share one client.
type GeminiProvider struct {
	client     *genai.Client
	model      string
	imageModel string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		model:      resolveModel(cfg.Model, geminiModels),
		imageModel: resolveModel(cfg.ImageModel, geminiModels),
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		ThinkingConfig:  thinkingConfig(p.model),
	}

	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	// Configure structured output.
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = buildGeminiSchema(req.Schema.Definition)
	}

	contents := buildGeminiContents(req.Messages)

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	text, err := geminiText(result)
	if err != nil {
		return nil, err
	}

	content, err := structuredContent(req.Schema, text)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Content:    content,
		Model:      p.model,
		StopReason: mapGeminiStopReason(result),
	}

	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func (p *GeminiProvider) ProviderName() string { return "gemini" }

// GenerateImage asks the image model for a single picture and returns the
// first inline image part.
func (p *GeminiProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage)},
	}
	if req.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.imageModel, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	resp := &ImageResponse{Model: p.imageModel}
	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				resp.Data = part.InlineData.Data
				resp.MIMEType = part.InlineData.MIMEType
				return resp, nil
			}
		}
	}

	reason := ""
	if len(result.Candidates) > 0 {
		reason = string(result.Candidates[0].FinishReason)
	}
	return nil, &ErrNoImage{Reason: reason}
}

func (p *GeminiProvider) ImageModelID() string {
	return p.imageModel
}

func buildGeminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}
	return out
}

// buildGeminiSchema converts a JSON Schema definition map to a genai.Schema.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		schema.Type = mapGeminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema)
		for k, v := range props {
			if propDef, ok := v.(map[string]any); ok {
				schema.Properties[k] = buildGeminiSchema(propDef)
			}
		}
	}

	if req, ok := def["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	if enums, ok := def["enum"].([]any); ok {
		for _, e := range enums {
			if s, ok := e.(string); ok {
				schema.Enum = append(schema.Enum, s)
			}
		}
	}

	if items, ok := def["items"].(map[string]any); ok {
		schema.Items = buildGeminiSchema(items)
	}

	return schema
}

func mapGeminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// geminiText returns the response text. A response cut off before any
// text was produced is reported as ErrMaxTokensExceeded.
func geminiText(result *genai.GenerateContentResponse) (string, error) {
	text := result.Text()
	if strings.TrimSpace(text) == "" && mapGeminiStopReason(result) == "max_tokens" {
		return "", &ErrMaxTokensExceeded{}
	}
	return text, nil
}

// thinkingConfig turns thinking off for short text answers. Thinking
// tokens count against MaxOutputTokens. Pro models cannot disable it.
func thinkingConfig(model string) *genai.ThinkingConfig {
	if strings.Contains(model, "-pro") {
		return nil
	}
	return &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
}

func mapGeminiStopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case "STOP":
			return "end"
		case "MAX_TOKENS":
			return "max_tokens"
		}
	}
	return "end"
}

// mapGeminiError classifies SDK errors. The SDK returns APIError by value,
// so both forms are checked.
func mapGeminiError(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr):
		apiErr = *apiErrPtr
	default:
		return &ErrProviderUnavailable{Err: err}
	}

	switch {
	case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
		return &ErrAuth{Err: err}
	case apiErr.Code == http.StatusBadRequest && mentionsAPIKey(apiErr.Message):
		return &ErrAuth{Err: err}
	case apiErr.Code == http.StatusTooManyRequests && apiErr.Status == "RESOURCE_EXHAUSTED" && strings.Contains(strings.ToLower(apiErr.Message), "quota"):
		return &ErrQuotaExceeded{Err: err}
	case apiErr.Code == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case apiErr.Code >= 500:
		return &ErrProviderUnavailable{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

func mentionsAPIKey(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "api key") || strings.Contains(msg, "api_key")
}
