// Package puzzle builds game rounds from a catalog snapshot. Every
// function is pure apart from the random source passed in.
package puzzle

import (
	"math/rand/v2"

	"github.com/abhisek/sprouts/internal/content"
)

// WordSessionSize is the number of words in one word game.
const WordSessionSize = 10

// NewRand returns a random source seeded from the runtime generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Seeded returns a deterministic random source.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a shuffled copy of s.
func Shuffle[T any](r *rand.Rand, s []T) []T {
	out := append([]T(nil), s...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func noContent(kind content.Kind) error {
	switch kind {
	case content.Words:
		return content.Errorf(content.NoContent, "No words yet! Ask a grown-up to add some in Settings.")
	case content.CountingItems:
		return content.Errorf(content.NoContent, "No counting items yet! Ask a grown-up to add some in Settings.")
	default:
		return content.Errorf(content.NoContent, "No color items yet! Ask a grown-up to add some in Settings.")
	}
}
