package content

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat", "cat"},
		{"C@T!", "cat"},
		{"@pple", "apple"},
		{"  Sun ", "sun"},
		{"ice-cream", "icecream"},
		{"123", ""},
		{"Über", "ber"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "red", NormalizeColor("  RED "))
	assert.Equal(t, "light blue", NormalizeColor("Light   Blue"))
	assert.Equal(t, "", NormalizeColor("   "))
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, WordItem{Word: "sun"}.Validate())
	assert.True(t, Is(WordItem{Word: "Sun"}.Validate(), InvalidInput))
	assert.True(t, Is(WordItem{}.Validate(), InvalidInput))

	assert.NoError(t, CountingItem{Name: "apple"}.Validate())
	assert.True(t, Is(CountingItem{Name: "two apples"}.Validate(), InvalidInput))

	assert.NoError(t, ColorItem{Name: "car", Color: "light blue"}.Validate())
	assert.True(t, Is(ColorItem{Name: "car"}.Validate(), InvalidInput))
	assert.True(t, Is(ColorItem{Name: "car", Color: "Red"}.Validate(), InvalidInput))
}

func TestItemIdentity(t *testing.T) {
	items := []Item{
		WordItem{Word: "sun", Image: "a"},
		CountingItem{Name: "apple", Image: "b"},
		ColorItem{Name: "car", Color: "red", Image: "c"},
	}
	wantKinds := []Kind{Words, CountingItems, ColorItems}
	wantKeys := []string{"sun", "apple", "car"}
	for i, it := range items {
		assert.Equal(t, wantKinds[i], it.Kind())
		assert.Equal(t, wantKeys[i], it.Key())
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"word": Words, "counting": CountingItems, "colors": ColorItems} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("shapes")
	assert.Error(t, err)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, Unknown, CodeOf(errors.New("boom")))

	wrapped := fmt.Errorf("outer: %w", Errorf(DuplicateItem, "'cat' is already in the game!"))
	assert.Equal(t, DuplicateItem, CodeOf(wrapped))
	assert.True(t, Is(wrapped, DuplicateItem))

	cause := errors.New("disk full")
	err := Wrap(StorageUnavailable, cause, "save word")
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Wrap(StorageUnavailable, nil, "noop"))
}

func TestMessage(t *testing.T) {
	assert.Contains(t, Message(Errorf(MissingCredential, "no key")), "Settings")
	assert.Contains(t, Message(Errorf(InvalidCredential, "bad key")), "Settings")
	assert.Equal(t, "'cat' is already in the game!", Message(Errorf(DuplicateItem, "'cat' is already in the game!")))
	assert.Equal(t, "Something went wrong. Please try again.", Message(errors.New("sql: connection reset")))
	assert.Empty(t, Message(nil))

	invalid := WordItem{Word: "Dog"}.Validate()
	assert.Equal(t, "Please type a name using letters.", Message(invalid))
	assert.Contains(t, invalid.Error(), `"Dog"`)
	assert.Equal(t, "Please enter a valid word.", Message(Errorf(InvalidInput, "Please enter a valid word.")))
}

func TestDataURIRoundTrip(t *testing.T) {
	uri := EncodeDataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", uri)

	mime, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	_, _, err = DecodeDataURI("https://example.com/cat.png")
	assert.Error(t, err)
	_, _, err = DecodeDataURI("data:text/plain,hello")
	assert.Error(t, err)
}
