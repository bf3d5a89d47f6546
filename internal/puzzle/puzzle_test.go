package puzzle

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/content"
)

const seeds = 500

func words(names ...string) []content.WordItem {
	out := make([]content.WordItem, len(names))
	for i, n := range names {
		out[i] = content.WordItem{Word: n, Image: "data:image/png;base64,AA=="}
	}
	return out
}

func sorted(s string) string {
	r := []rune(s)
	slices.Sort(r)
	return string(r)
}

func TestScrambleDiffers(t *testing.T) {
	for _, w := range []string{"cat", "ab", "tree", "ball", "apple", "moon", "aab"} {
		for seed := range uint64(seeds) {
			got := Scramble(Seeded(seed), w)
			if string(got) == w {
				t.Fatalf("Scramble(%q) seed %d returned the original order", w, seed)
			}
			if sorted(string(got)) != sorted(w) {
				t.Fatalf("Scramble(%q) = %q is not a permutation", w, string(got))
			}
		}
	}
}

func TestScrambleIdentity(t *testing.T) {
	r := Seeded(1)
	assert.Equal(t, []rune("a"), Scramble(r, "a"))
	assert.Empty(t, Scramble(r, ""))
	assert.Equal(t, []rune("zzz"), Scramble(r, "zzz"))
}

func TestCheckWord(t *testing.T) {
	assert.True(t, CheckWord("cat", []rune("cat")))
	assert.False(t, CheckWord("cat", []rune("act")))
	assert.False(t, CheckWord("cat", []rune("ca")))
}

func TestBuildWordSession(t *testing.T) {
	catalog := words("ant", "bat", "cat", "dog", "egg", "fox", "gum", "hat", "ink", "jam", "kit", "log")

	for seed := range uint64(seeds) {
		session, err := BuildWordSession(Seeded(seed), catalog)
		require.NoError(t, err)
		require.Len(t, session, WordSessionSize)

		seen := map[string]bool{}
		for _, w := range session {
			require.False(t, seen[w.Word], "repeated %q", w.Word)
			seen[w.Word] = true
			require.Contains(t, catalog, w)
		}
	}
}

func TestBuildWordSession_Small(t *testing.T) {
	session, err := BuildWordSession(Seeded(7), words("sun", "sun", "moon"))
	require.NoError(t, err)
	assert.ElementsMatch(t, words("sun", "moon"), session)
}

func TestBuildWordSession_Shuffles(t *testing.T) {
	catalog := words("ant", "bat", "cat", "dog", "egg")
	orders := map[string]bool{}
	for seed := range uint64(50) {
		session, err := BuildWordSession(Seeded(seed), catalog)
		require.NoError(t, err)
		var keys []string
		for _, w := range session {
			keys = append(keys, w.Word)
		}
		orders[strings.Join(keys, ",")] = true
	}
	assert.Greater(t, len(orders), 1)
}

func TestBuildWordSession_Empty(t *testing.T) {
	session, err := BuildWordSession(Seeded(1), nil)
	assert.Empty(t, session)
	assert.Equal(t, content.NoContent, content.CodeOf(err))
}

func TestBuildMathRound(t *testing.T) {
	items := []content.CountingItem{{Name: "apple"}, {Name: "star"}, {Name: "duck"}}

	for seed := range uint64(seeds) {
		m, err := BuildMathRound(Seeded(seed), items)
		require.NoError(t, err)

		require.GreaterOrEqual(t, m.A, 1)
		require.LessOrEqual(t, m.A, MaxOperand)
		require.GreaterOrEqual(t, m.B, 1)
		require.LessOrEqual(t, m.B, MaxOperand)
		require.Equal(t, m.A+m.B, m.Sum)
		require.True(t, m.Correct(m.Sum))

		require.Len(t, m.Options, 3)
		hits := 0
		seen := map[int]bool{}
		for _, o := range m.Options {
			require.False(t, seen[o], "duplicate option %d in %v", o, m.Options)
			seen[o] = true
			if o == m.Sum {
				hits++
			}
		}
		require.Equal(t, 1, hits)
		require.ElementsMatch(t, []int{m.Sum, m.Sum + 2, m.Sum - 1}, m.Options)
		require.NotEmpty(t, m.Question)
	}
}

func TestMathChoicesGuard(t *testing.T) {
	// A sum of 1 cannot be drawn, but the option builder still keeps the
	// options distinct and positive.
	assert.Equal(t, []int{1, 3, 2}, mathChoices(1))
	assert.Equal(t, []int{2, 4, 1}, mathChoices(2))
}

func TestMathQuestionTemplates(t *testing.T) {
	got := map[string]bool{}
	for seed := range uint64(seeds) {
		m, err := BuildMathRound(Seeded(seed), []content.CountingItem{{Name: "apple"}})
		require.NoError(t, err)
		got[m.Question] = true
	}
	var apples int
	for q := range got {
		if strings.Contains(q, "apples") {
			apples++
		}
	}
	assert.Greater(t, apples, 0)
	assert.Contains(t, got, "How many apples are there in total?")
}

func TestBuildMathRound_Empty(t *testing.T) {
	m, err := BuildMathRound(Seeded(1), nil)
	assert.Nil(t, m)
	assert.Equal(t, content.NoContent, content.CodeOf(err))
}

func TestBuildColorRound(t *testing.T) {
	items := []content.ColorItem{
		{Name: "frog", Color: "green"},
		{Name: "sky", Color: "light blue"},
		{Name: "car", Color: "red"},
		{Name: "leaf", Color: "green"},
	}

	for seed := range uint64(seeds) {
		c, err := BuildColorRound(Seeded(seed), items)
		require.NoError(t, err)
		require.Len(t, c.Options, 3)
		require.Equal(t, c.Item.Color, c.Answer)

		hits := 0
		seen := map[string]bool{}
		for _, o := range c.Options {
			key := strings.ToLower(o)
			require.False(t, seen[key], "duplicate option %q in %v", o, c.Options)
			seen[key] = true
			if key == c.Answer {
				hits++
			}
		}
		require.Equal(t, 1, hits)
		require.True(t, c.Correct(strings.ToUpper(c.Answer)))
	}
}

func TestBuildColorRound_CaseInsensitiveAnswer(t *testing.T) {
	items := []content.ColorItem{{Name: "frog", Color: "Green"}, {Name: "apple", Color: "GREEN"}}
	for seed := range uint64(seeds) {
		c, err := BuildColorRound(Seeded(seed), items)
		require.NoError(t, err)
		assert.Equal(t, "green", c.Answer)
		assert.Len(t, c.Options, 3)
		assert.Equal(t, 1, strings.Count(strings.Join(c.Options, ","), "green"))
	}
}

func TestDistractorPool(t *testing.T) {
	items := []content.ColorItem{{Color: "Teal"}, {Color: "red"}, {Color: "teal"}}
	pool := distractorPool(items, "red")

	assert.NotContains(t, pool, "red")
	assert.Equal(t, "teal", pool[0])
	assert.Len(t, pool, 1+len(content.Palette)-1)
}

func TestBuildColorRound_Empty(t *testing.T) {
	c, err := BuildColorRound(Seeded(1), nil)
	assert.Nil(t, c)
	assert.Equal(t, content.NoContent, content.CodeOf(err))
}

func TestShuffleCopies(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := Shuffle(Seeded(3), in)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	assert.ElementsMatch(t, in, out)
}
