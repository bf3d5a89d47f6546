package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/sprouts/internal/store"
)

// named is implemented by providers that can report their backend name.
type named interface {
	ProviderName() string
}

func providerName(v any) string {
	if n, ok := v.(named); ok {
		return n.ProviderName()
	}
	return "unknown"
}

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Kind:        "text",
		Provider:    providerName(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	record(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// LoggingImageGenerator records every image request as an event. Image
// bytes are summarized, not stored.
type LoggingImageGenerator struct {
	inner     ImageGenerator
	eventRepo store.EventRepo
}

// WithImageLogging wraps an ImageGenerator with event logging.
func WithImageLogging(g ImageGenerator, repo store.EventRepo) ImageGenerator {
	return &LoggingImageGenerator{inner: g, eventRepo: repo}
}

func (l *LoggingImageGenerator) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	start := time.Now()

	resp, err := l.inner.GenerateImage(ctx, req)

	data := store.LLMRequestEventData{
		Kind:        "image",
		Provider:    providerName(l.inner),
		Model:       l.inner.ImageModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: "[prompt]\n" + req.Prompt + "\n",
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = fmt.Sprintf("[%s, %d bytes]", resp.MIMEType, len(resp.Data))
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	record(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingImageGenerator) ImageModelID() string {
	return l.inner.ImageModelID()
}

// record logs the event but never fails the request.
func record(ctx context.Context, repo store.EventRepo, data store.LLMRequestEventData) {
	if repo == nil {
		return
	}
	if err := repo.AppendLLMRequest(context.WithoutCancel(ctx), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
