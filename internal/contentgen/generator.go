// Package contentgen produces candidate game content with the generative
// service. It reads the catalog to avoid duplicates but never writes to it;
// approval belongs to the review workflow.
package contentgen

import (
	"context"
	"encoding/json"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/llm"
)

// Backend supplies the text and image clients. *llm.Factory satisfies it.
type Backend interface {
	Clients(ctx context.Context) (llm.Provider, llm.ImageGenerator, error)
}

// KeyChecker builds a text client for an unsaved credential.
// *llm.Factory satisfies it.
type KeyChecker interface {
	ProviderWithKey(ctx context.Context, key string) (llm.Provider, error)
}

// Lookup is the read side of the catalog used for duplicate checks.
// *catalog.Catalog satisfies it.
type Lookup interface {
	Has(ctx context.Context, kind content.Kind, key string) (bool, error)
	Keys(ctx context.Context, kind content.Kind) ([]string, error)
}

// Generator is the content provider.
type Generator struct {
	backend Backend
	catalog Lookup
	config  Config
}

// New creates a Generator.
func New(backend Backend, catalog Lookup, cfg Config) *Generator {
	return &Generator{backend: backend, catalog: catalog, config: cfg}
}

// RandomWord asks the service for a new 3 to 5 letter word and draws it.
func (g *Generator) RandomWord(ctx context.Context) (*Candidate, error) {
	return g.Random(ctx, content.Words)
}

// WordFor draws a picture for a word typed by the parent.
func (g *Generator) WordFor(ctx context.Context, word string) (*Candidate, error) {
	return g.For(ctx, content.Words, word, "")
}

// RandomCountingItem asks the service for a new object to count and draws it.
func (g *Generator) RandomCountingItem(ctx context.Context) (*Candidate, error) {
	return g.Random(ctx, content.CountingItems)
}

// CountingItemFor draws a picture for an object typed by the parent.
func (g *Generator) CountingItemFor(ctx context.Context, name string) (*Candidate, error) {
	return g.For(ctx, content.CountingItems, name, "")
}

// RandomColorItem asks the service for an object and its color and draws it.
func (g *Generator) RandomColorItem(ctx context.Context) (*Candidate, error) {
	return g.Random(ctx, content.ColorItems)
}

// ColorItemFor draws an object in the given color.
func (g *Generator) ColorItemFor(ctx context.Context, name, color string) (*Candidate, error) {
	return g.For(ctx, content.ColorItems, name, color)
}

// Random suggests a name not yet in the catalog and draws it. A suggestion
// that is already present is retried within Config.Attempts; after that
// the duplicate is reported instead of being used.
func (g *Generator) Random(ctx context.Context, kind content.Kind) (*Candidate, error) {
	if _, err := kindOK(kind); err != nil {
		return nil, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	text, image, err := g.backend.Clients(ctx)
	if err != nil {
		return nil, classify(err)
	}

	c, err := g.suggest(ctx, text, kind)
	if err != nil {
		return nil, err
	}
	return g.illustrate(ctx, image, c)
}

// For draws a picture for a parent-supplied name. The name is normalized
// before the duplicate check. color is only used for color items.
func (g *Generator) For(ctx context.Context, kind content.Kind, name, color string) (*Candidate, error) {
	noun, err := kindOK(kind)
	if err != nil {
		return nil, err
	}

	c := &Candidate{Kind: kind, Name: content.Normalize(name)}
	if kind == content.ColorItems {
		c.Color = content.NormalizeColor(color)
		if c.Name == "" || c.Color == "" {
			return nil, content.Errorf(content.InvalidInput, "Please enter both a name and a color.")
		}
	} else if c.Name == "" {
		return nil, content.Errorf(content.InvalidInput, "Please enter a valid %s.", noun)
	}

	if err := g.checkNew(ctx, kind, c.Name); err != nil {
		return nil, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	_, image, err := g.backend.Clients(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return g.illustrate(ctx, image, c)
}

func (g *Generator) checkNew(ctx context.Context, kind content.Kind, key string) error {
	dup, err := g.catalog.Has(ctx, kind, key)
	if err != nil {
		return err
	}
	if dup {
		return content.Errorf(content.DuplicateItem, "'%s' is already in the game!", key)
	}
	return nil
}

func (g *Generator) suggest(ctx context.Context, text llm.Provider, kind content.Kind) (*Candidate, error) {
	existing, err := g.catalog.Keys(ctx, kind)
	if err != nil {
		return nil, err
	}

	attempts := max(1, g.config.Attempts)
	var c *Candidate
	for range attempts {
		c, err = g.ask(ctx, text, kind, existing)
		if err != nil {
			return nil, err
		}
		if err = g.checkNew(ctx, kind, c.Name); err == nil {
			return c, nil
		}
		if !content.Is(err, content.DuplicateItem) {
			return nil, err
		}
		existing = append(existing, c.Name)
	}
	return nil, err
}

type colorSuggestion struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (g *Generator) ask(ctx context.Context, text llm.Provider, kind content.Kind, existing []string) (*Candidate, error) {
	req := llm.Request{
		MaxTokens:   g.config.MaxSuggestionTokens,
		Temperature: g.config.Temperature,
	}
	var prompt string
	switch kind {
	case content.Words:
		prompt = wordPrompt
	case content.CountingItems:
		prompt = countingPrompt
	case content.ColorItems:
		prompt = colorPrompt
		req.Schema = ColorItemSchema
	}
	req.Messages = []llm.Message{{Role: llm.RoleUser, Content: withAvoid(prompt, existing, g.config.MaxAvoid)}}

	resp, err := text.Generate(llm.WithPurpose(ctx, llm.SuggestPurpose(string(kind))), req)
	if err != nil {
		return nil, classify(err)
	}

	c := &Candidate{Kind: kind}
	if kind == content.ColorItems {
		var raw colorSuggestion
		if err := json.Unmarshal(resp.Content, &raw); err != nil {
			return nil, content.Wrap(content.GenerationFailed, err, "unreadable color suggestion")
		}
		c.Name = content.Normalize(raw.Name)
		c.Color = content.Normalize(raw.Color)
	} else {
		c.Name = content.Normalize(string(resp.Content))
	}

	if c.Name == "" || (kind == content.ColorItems && c.Color == "") {
		return nil, content.Errorf(content.GenerationFailed, "empty suggestion %q", string(resp.Content))
	}
	return c, nil
}

func (g *Generator) illustrate(ctx context.Context, image llm.ImageGenerator, c *Candidate) (*Candidate, error) {
	var prompt string
	switch c.Kind {
	case content.Words:
		prompt = wordImagePrompt(c.Name)
	case content.CountingItems:
		prompt = countingImagePrompt(c.Name)
	case content.ColorItems:
		prompt = colorImagePrompt(c.Name, c.Color)
	}

	resp, err := image.GenerateImage(llm.WithPurpose(ctx, llm.ImagePurpose(string(c.Kind))), llm.ImageRequest{
		Prompt:      prompt,
		AspectRatio: g.config.AspectRatio,
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Data) == 0 {
		return nil, content.Errorf(content.GenerationFailed, "no picture for %q", c.Name)
	}

	c.Image = content.EncodeDataURI(resp.MIMEType, resp.Data)
	c.Model = resp.Model
	return c, nil
}

func (g *Generator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.config.Timeout)
}

func kindOK(kind content.Kind) (noun string, err error) {
	switch kind {
	case content.Words:
		return "word", nil
	case content.CountingItems:
		return "item name", nil
	case content.ColorItems:
		return "item name", nil
	}
	return "", content.Invalidf("unknown content kind %q", kind)
}
