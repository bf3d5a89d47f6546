package puzzle

import (
	"math/rand/v2"

	"github.com/abhisek/sprouts/internal/content"
)

const colorDistractors = 2

// ColorRound is one "which color is it?" puzzle.
type ColorRound struct {
	Item    content.ColorItem
	Answer  string
	Options []string
}

// Correct reports whether choice names the item's color, ignoring case.
func (c *ColorRound) Correct(choice string) bool {
	return content.NormalizeColor(choice) == c.Answer
}

// BuildColorRound picks a random color item and offers its color with two
// distractors drawn from the catalog's colors and the reference palette.
// When fewer than two distractors exist the round has fewer options.
func BuildColorRound(r *rand.Rand, items []content.ColorItem) (*ColorRound, error) {
	if len(items) == 0 {
		return nil, noContent(content.ColorItems)
	}

	item := items[r.IntN(len(items))]
	answer := content.NormalizeColor(item.Color)

	pool := distractorPool(items, answer)
	pool = Shuffle(r, pool)
	if len(pool) > colorDistractors {
		pool = pool[:colorDistractors]
	}

	return &ColorRound{
		Item:    item,
		Answer:  answer,
		Options: Shuffle(r, append([]string{answer}, pool...)),
	}, nil
}

// distractorPool returns every distinct color from items and the palette,
// except answer, in first-seen order.
func distractorPool(items []content.ColorItem, answer string) []string {
	seen := map[string]bool{answer: true, "": true}
	var pool []string
	add := func(c string) {
		c = content.NormalizeColor(c)
		if !seen[c] {
			seen[c] = true
			pool = append(pool, c)
		}
	}
	for _, it := range items {
		add(it.Color)
	}
	for _, c := range content.Palette {
		add(c)
	}
	return pool
}
