package puzzle

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/sprouts/internal/content"
)

// BuildWordSession samples up to WordSessionSize distinct words in random
// order. An empty catalog yields a NoContent error.
func BuildWordSession(r *rand.Rand, words []content.WordItem) ([]content.WordItem, error) {
	seen := make(map[string]bool, len(words))
	unique := make([]content.WordItem, 0, len(words))
	for _, w := range words {
		if w.Word == "" || seen[w.Word] {
			continue
		}
		seen[w.Word] = true
		unique = append(unique, w)
	}
	if len(unique) == 0 {
		return nil, noContent(content.Words)
	}

	session := Shuffle(r, unique)
	if len(session) > WordSessionSize {
		session = session[:WordSessionSize]
	}
	return session, nil
}

// Scramble returns the letters of word in an order that differs from the
// original. Words of one letter, or made of a single repeated letter,
// cannot be reordered and come back unchanged.
func Scramble(r *rand.Rand, word string) []rune {
	letters := []rune(word)
	if !scramblable(letters) {
		return letters
	}
	for {
		out := Shuffle(r, letters)
		if !slices.Equal(out, letters) {
			return out
		}
	}
}

func scramblable(letters []rune) bool {
	for _, l := range letters[min(1, len(letters)):] {
		if l != letters[0] {
			return true
		}
	}
	return false
}

// CheckWord reports whether guess spells word.
func CheckWord(word string, guess []rune) bool {
	return string(guess) == word
}
