// Package content defines the approved game assets, their normalization
// rules and the error taxonomy shared by the content pipeline.
package content

import "fmt"

// Kind identifies one of the three independent catalog collections.
type Kind string

const (
	Words         Kind = "words"
	CountingItems Kind = "counting"
	ColorItems    Kind = "colors"
)

// Kinds lists every collection in display order.
var Kinds = []Kind{Words, CountingItems, ColorItems}

// ParseKind resolves a user-supplied collection name. A few aliases are
// accepted so CLI users can type the singular forms.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "words", "word":
		return Words, nil
	case "counting", "counting-items", "count", "math":
		return CountingItems, nil
	case "colors", "color", "color-items":
		return ColorItems, nil
	}
	return "", fmt.Errorf("unknown content kind %q (want words, counting or colors)", s)
}

// Label returns a short human-readable name for the collection.
func (k Kind) Label() string {
	switch k {
	case Words:
		return "Words"
	case CountingItems:
		return "Counting items"
	case ColorItems:
		return "Color items"
	}
	return string(k)
}

// Item is implemented by every catalog entry.
type Item interface {
	// Kind returns the collection the item belongs to.
	Kind() Kind

	// Key returns the natural identity of the item.
	Key() string

	// Picture returns the encoded image payload (a data URI).
	Picture() string

	// Validate checks the item invariants after normalization.
	Validate() error
}

// WordItem is a word with its illustration.
type WordItem struct {
	Word  string `json:"word"`
	Image string `json:"image"`
}

func (w WordItem) Kind() Kind      { return Words }
func (w WordItem) Key() string     { return w.Word }
func (w WordItem) Picture() string { return w.Image }

func (w WordItem) Validate() error {
	if w.Word == "" || Normalize(w.Word) != w.Word {
		return Invalidf("word %q must be lowercase letters only", w.Word)
	}
	return nil
}

// CountingItem is an object the math game asks the player to count.
type CountingItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (c CountingItem) Kind() Kind      { return CountingItems }
func (c CountingItem) Key() string     { return c.Name }
func (c CountingItem) Picture() string { return c.Image }

func (c CountingItem) Validate() error {
	if c.Name == "" || Normalize(c.Name) != c.Name {
		return Invalidf("item name %q must be lowercase letters only", c.Name)
	}
	return nil
}

// ColorItem is an object drawn in a specific color for the color game.
type ColorItem struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Image string `json:"image"`
}

func (c ColorItem) Kind() Kind      { return ColorItems }
func (c ColorItem) Key() string     { return c.Name }
func (c ColorItem) Picture() string { return c.Image }

func (c ColorItem) Validate() error {
	if c.Name == "" || Normalize(c.Name) != c.Name {
		return Invalidf("item name %q must be lowercase letters only", c.Name)
	}
	if c.Color == "" || NormalizeColor(c.Color) != c.Color {
		return Invalidf("color %q must be a lowercase label", c.Color)
	}
	return nil
}
