package play

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/catalog"
	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/leaderboard"
	"github.com/abhisek/sprouts/internal/puzzle"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/store"
)

const img = "data:image/png;base64,iVBORw=="

func newGame(t *testing.T, mode session.Mode, items ...content.Item) *session.Controller {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sprouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	cat := catalog.New(st.CatalogRepo())
	for _, it := range items {
		require.NoError(t, cat.Put(ctx, it))
	}
	ctl := session.New(cat, leaderboard.New(st.SettingsRepo()), st.SettingsRepo(), puzzle.Seeded(7))
	require.NoError(t, ctl.Start(ctx, "Ava"))
	require.NoError(t, ctl.Enter(ctx, mode))
	return ctl
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestWordSpelledByTyping(t *testing.T) {
	ctl := newGame(t, session.ModeWords, content.WordItem{Word: "cat", Image: img})
	s := New(context.Background(), ctl)

	for _, r := range "cat" {
		s.Update(key(r))
	}
	require.Equal(t, session.StateCorrectGuess, ctl.State())
	assert.Equal(t, 10, ctl.Progress().Score)
	assert.Contains(t, s.View(100, 34), "CAT")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, session.StateGameOver, ctl.State())
	assert.Equal(t, session.ReasonCompleted, ctl.Summary().Reason)
}

func TestWordUndoAndShuffle(t *testing.T) {
	ctl := newGame(t, session.ModeWords, content.WordItem{Word: "dog", Image: img})
	s := New(context.Background(), ctl)

	s.Update(key('d'))
	s.Update(key('o'))
	assert.Equal(t, []rune("do"), ctl.Guess())

	s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, []rune("d"), ctl.Guess())

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Empty(t, ctl.Guess())

	// letters that are not in the word are ignored
	s.Update(key('z'))
	assert.Empty(t, ctl.Guess())
}

func TestWrongWordCostsALife(t *testing.T) {
	ctl := newGame(t, session.ModeWords, content.WordItem{Word: "sun", Image: img})
	s := New(context.Background(), ctl)

	for _, r := range "nus" {
		s.Update(key(r))
	}
	assert.True(t, ctl.WrongGuess())
	assert.Equal(t, session.StartLives-1, ctl.Progress().Lives)
	assert.Contains(t, s.View(100, 34), "Not quite")
}

func TestMathAnswerSchedulesNextRound(t *testing.T) {
	ctl := newGame(t, session.ModeMath, content.CountingItem{Name: "apple", Image: img})
	s := New(context.Background(), ctl)

	first := ctl.Math()
	right := -1
	for i, n := range first.Options {
		if first.Correct(n) {
			right = i
		}
	}
	require.GreaterOrEqual(t, right, 0)

	_, cmd := s.Update(key(rune('1' + right)))
	require.NotNil(t, cmd)
	assert.Equal(t, session.FeedbackCorrect, ctl.Feedback())
	assert.Equal(t, right, s.choices.Right)
	assert.True(t, s.choices.Locked)

	// input is ignored while feedback shows
	s.Update(key('1'))
	assert.Equal(t, 10, ctl.Progress().Score)

	s.Update(resumeMsg{token: -1})
	assert.Same(t, first, ctl.Math())

	msg := cmd()
	s.Update(msg)
	assert.NotSame(t, first, ctl.Math())
	assert.Equal(t, session.FeedbackNone, ctl.Feedback())
	assert.False(t, s.choices.Locked)
}

func TestColorWrongAnswerMarksChoice(t *testing.T) {
	ctl := newGame(t, session.ModeColors, content.ColorItem{Name: "car", Color: "red", Image: img})
	s := New(context.Background(), ctl)

	round := ctl.Color()
	wrong := -1
	for i, opt := range round.Options {
		if !round.Correct(opt) {
			wrong = i
			break
		}
	}
	require.GreaterOrEqual(t, wrong, 0)

	_, cmd := s.Update(key([]rune(strconv.Itoa(wrong + 1))[0]))
	require.NotNil(t, cmd)
	assert.Equal(t, wrong, s.choices.Wrong)
	assert.Equal(t, session.StartLives-1, ctl.Progress().Lives)
	assert.Contains(t, s.View(100, 34), "Try again")

	s.Update(cmd())
	assert.Same(t, round, ctl.Color())
	assert.Equal(t, -1, s.choices.Wrong)
}
