package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/llm"
)

type fakeBackend struct {
	text  *llm.MockProvider
	image *llm.MockImageGenerator
	err   error
	keys  []string
}

func (b *fakeBackend) Clients(context.Context) (llm.Provider, llm.ImageGenerator, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	return b.text, b.image, nil
}

func (b *fakeBackend) ProviderWithKey(_ context.Context, key string) (llm.Provider, error) {
	b.keys = append(b.keys, key)
	return b.text, nil
}

type fakeLookup map[content.Kind][]string

func (f fakeLookup) Has(_ context.Context, kind content.Kind, key string) (bool, error) {
	for _, k := range f[kind] {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeLookup) Keys(_ context.Context, kind content.Kind) ([]string, error) {
	return f[kind], nil
}

var png = []byte{0x89, 'P', 'N', 'G'}

func newTestGenerator(lookup fakeLookup, texts ...string) (*Generator, *fakeBackend) {
	text := llm.NewMockProvider()
	for _, s := range texts {
		text.AddResponse(llm.MockResponse{Content: json.RawMessage(s)})
	}
	image := llm.NewMockImageGenerator()
	image.Fallback = &llm.MockImage{Data: png}
	b := &fakeBackend{text: text, image: image}
	return New(b, lookup, DefaultConfig()), b
}

func TestRandomWord(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{}, "  Sun.\n")

	c, err := gen.RandomWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content.Words, c.Kind)
	assert.Equal(t, "sun", c.Name)
	assert.Equal(t, content.EncodeDataURI("image/png", png), c.Image)
	assert.Equal(t, "mock-image", c.Model)
	assert.Equal(t, content.WordItem{Word: "sun", Image: c.Image}, c.Item())

	require.Len(t, b.text.Calls, 1)
	assert.Contains(t, b.text.Calls[0].Messages[0].Content, "3 to 5 letter")
	assert.Nil(t, b.text.Calls[0].Schema)

	require.Len(t, b.image.Calls, 1)
	assert.Contains(t, b.image.Calls[0].Prompt, "'sun'")
	assert.Equal(t, "1:1", b.image.Calls[0].AspectRatio)
}

func TestRandomWord_AvoidsExisting(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{content.Words: {"cat", "dog"}}, "sun")

	_, err := gen.RandomWord(context.Background())
	require.NoError(t, err)
	assert.Contains(t, b.text.Calls[0].Messages[0].Content, "cat, dog")
}

func TestRandomWord_DuplicateRetriedOnce(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{content.Words: {"cat"}}, "cat", "hat")

	c, err := gen.RandomWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hat", c.Name)
	assert.Equal(t, 2, b.text.CallCount())
	assert.Equal(t, 1, b.image.CallCount())
}

func TestRandomWord_DuplicateSurfaced(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{content.Words: {"cat"}}, "cat", "CAT", "hat")

	_, err := gen.RandomWord(context.Background())
	require.Error(t, err)
	assert.Equal(t, content.DuplicateItem, content.CodeOf(err))
	assert.Equal(t, "'cat' is already in the game!", content.Message(err))
	assert.Equal(t, 2, b.text.CallCount(), "at most one retry")
	assert.Equal(t, 0, b.image.CallCount())
}

func TestRandomWord_EmptySuggestion(t *testing.T) {
	gen, _ := newTestGenerator(fakeLookup{}, "123 !!")

	_, err := gen.RandomWord(context.Background())
	assert.Equal(t, content.GenerationFailed, content.CodeOf(err))
}

func TestRandomWord_TruncatedSuggestion(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})
	b.text.AddResponse(llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}})

	_, err := gen.RandomWord(context.Background())
	require.Error(t, err)
	assert.Equal(t, content.GenerationFailed, content.CodeOf(err))
	var maxTok *llm.ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &maxTok))
	assert.Equal(t, 512, b.text.Calls[0].MaxTokens)
}

func TestWordFor_NormalizesBeforeDuplicateCheck(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{content.Words: {"cat"}})

	for _, in := range []string{"cat", "C@T!", "  Cat "} {
		_, err := gen.WordFor(context.Background(), in)
		assert.Equal(t, content.DuplicateItem, content.CodeOf(err), in)
	}
	assert.Equal(t, 0, b.image.CallCount())
}

func TestWordFor_InvalidInput(t *testing.T) {
	gen, _ := newTestGenerator(fakeLookup{})

	_, err := gen.WordFor(context.Background(), "!!! 42")
	require.Error(t, err)
	assert.Equal(t, content.InvalidInput, content.CodeOf(err))
	assert.Equal(t, "Please enter a valid word.", content.Message(err))
}

func TestWordFor_Success(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})

	c, err := gen.WordFor(context.Background(), "Ball")
	require.NoError(t, err)
	assert.Equal(t, "ball", c.Name)
	assert.Equal(t, 0, b.text.CallCount(), "user-supplied words skip the suggestion call")
}

func TestCountingItem(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{}, "Apple")

	c, err := gen.RandomCountingItem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content.CountingItem{Name: "apple", Image: c.Image}, c.Item())
	assert.Contains(t, b.text.Calls[0].Messages[0].Content, "counting game")
	assert.Contains(t, b.image.Calls[0].Prompt, "counting game")

	c, err = gen.CountingItemFor(context.Background(), "Star")
	require.NoError(t, err)
	assert.Equal(t, "star", c.Name)
}

func TestRandomColorItem(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{}, `{"name": "Frog", "color": "Green"}`)

	c, err := gen.RandomColorItem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "frog", c.Name)
	assert.Equal(t, "green", c.Color)
	assert.Equal(t, "green frog", c.Label())
	assert.Same(t, ColorItemSchema, b.text.Calls[0].Schema)
	assert.Contains(t, b.image.Calls[0].Prompt, "clearly the color 'green'")
}

func TestRandomColorItem_BadSuggestion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `frog`},
		{"missing color", `{"name": "frog", "color": ""}`},
		{"missing name", `{"name": "", "color": "red"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _ := newTestGenerator(fakeLookup{}, tt.body)
			_, err := gen.RandomColorItem(context.Background())
			assert.Equal(t, content.GenerationFailed, content.CodeOf(err))
		})
	}
}

func TestColorItemFor(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})

	c, err := gen.ColorItemFor(context.Background(), "Fire Truck", "  Light   BLUE ")
	require.NoError(t, err)
	assert.Equal(t, content.ColorItem{Name: "firetruck", Color: "light blue", Image: c.Image}, c.Item())
	require.NoError(t, c.Item().Validate())
	assert.Contains(t, b.image.Calls[0].Prompt, "'light blue'")

	_, err = gen.ColorItemFor(context.Background(), "frog", "  ")
	assert.Equal(t, content.InvalidInput, content.CodeOf(err))
	assert.Equal(t, "Please enter both a name and a color.", content.Message(err))
}

func TestGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		backendErr error
		imageErr   error
		want       content.Code
	}{
		{"missing key", &llm.ErrMissingAPIKey{Provider: "gemini"}, nil, content.MissingCredential},
		{"bad key", nil, &llm.ErrAuth{Err: errors.New("401")}, content.InvalidCredential},
		{"quota", nil, &llm.ErrQuotaExceeded{Err: errors.New("quota")}, content.QuotaExceeded},
		{"rate limit", nil, &llm.ErrRateLimit{}, content.QuotaExceeded},
		{"no image", nil, &llm.ErrNoImage{Reason: "SAFETY"}, content.GenerationFailed},
		{"other", nil, errors.New("boom"), content.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, b := newTestGenerator(fakeLookup{})
			b.err = tt.backendErr
			if tt.imageErr != nil {
				b.image.AddImage(llm.MockImage{Err: tt.imageErr})
			}

			c, err := gen.WordFor(context.Background(), "sun")
			assert.Nil(t, c)
			assert.Equal(t, tt.want, content.CodeOf(err))
		})
	}
}

func TestGenerate_EmptyImage(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})
	b.image.AddImage(llm.MockImage{Data: nil})

	_, err := gen.WordFor(context.Background(), "sun")
	assert.Equal(t, content.GenerationFailed, content.CodeOf(err))
}

func TestGenerate_UnknownKind(t *testing.T) {
	gen, _ := newTestGenerator(fakeLookup{})

	_, err := gen.Random(context.Background(), content.Kind("shapes"))
	assert.Equal(t, content.InvalidInput, content.CodeOf(err))
}

func TestValidateCredential(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{}, "ok")

	status := gen.ValidateCredential(context.Background(), "  sk-test ")
	assert.True(t, status.OK)
	assert.Equal(t, []string{"sk-test"}, b.keys)
	assert.Equal(t, 5, b.text.Calls[0].MaxTokens)
}

func TestValidateCredential_Rejected(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})
	b.text.AddResponse(llm.MockResponse{Err: &llm.ErrAuth{Err: errors.New("401")}})

	status := gen.ValidateCredential(context.Background(), "sk-bad")
	assert.False(t, status.OK)
	assert.Equal(t, content.InvalidCredential, status.Code)
	assert.True(t, strings.Contains(status.Message, "Settings"))
}

func TestValidateCredential_CurrentKey(t *testing.T) {
	gen, b := newTestGenerator(fakeLookup{})
	b.err = &llm.ErrMissingAPIKey{Provider: "gemini"}

	status := gen.ValidateCredential(context.Background(), "")
	assert.False(t, status.OK)
	assert.Equal(t, content.MissingCredential, status.Code)
	assert.Empty(t, b.keys)
}
