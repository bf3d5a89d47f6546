package puzzle

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/sprouts/internal/content"
)

const (
	// MaxOperand is the largest number of items in either group.
	MaxOperand = 5

	mathOptions = 3
)

var questionTemplates = []func(item string, a, b int) string{
	func(item string, _, _ int) string { return fmt.Sprintf("How many %ss are there in total?", item) },
	func(item string, _, _ int) string { return fmt.Sprintf("Can you count all the %ss?", item) },
	func(_ string, a, b int) string { return fmt.Sprintf("What is %d + %d?", a, b) },
	func(item string, _, _ int) string { return fmt.Sprintf("Add the %ss together!", item) },
}

// MathRound is one picture addition puzzle: A items plus B items.
type MathRound struct {
	Item     content.CountingItem
	A, B     int
	Sum      int
	Options  []int
	Question string
}

// Correct reports whether n is the answer.
func (m *MathRound) Correct(n int) bool { return n == m.Sum }

// BuildMathRound picks a random counting item and two operands in
// [1, MaxOperand]. The options are the sum, sum+2 and sum-1 (at least 1)
// in random order, topped up with other small numbers should any of them
// coincide.
func BuildMathRound(r *rand.Rand, items []content.CountingItem) (*MathRound, error) {
	if len(items) == 0 {
		return nil, noContent(content.CountingItems)
	}

	m := &MathRound{
		Item: items[r.IntN(len(items))],
		A:    r.IntN(MaxOperand) + 1,
		B:    r.IntN(MaxOperand) + 1,
	}
	m.Sum = m.A + m.B
	m.Options = Shuffle(r, mathChoices(m.Sum))
	m.Question = questionTemplates[r.IntN(len(questionTemplates))](m.Item.Name, m.A, m.B)
	return m, nil
}

func mathChoices(sum int) []int {
	opts := make([]int, 0, mathOptions)
	add := func(n int) {
		if n >= 1 && !slices.Contains(opts, n) && len(opts) < mathOptions {
			opts = append(opts, n)
		}
	}
	add(sum)
	add(sum + 2)
	add(max(1, sum-1))
	for n := sum + 1; len(opts) < mathOptions; n++ {
		add(n)
	}
	return opts
}
