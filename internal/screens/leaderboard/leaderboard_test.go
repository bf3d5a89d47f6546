package leaderboard

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/catalog"
	board "github.com/abhisek/sprouts/internal/leaderboard"
	"github.com/abhisek/sprouts/internal/puzzle"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/store"
)

func TestSelectAndViewBoard(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sprouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	scores := board.New(st.SettingsRepo())
	_, err = scores.Record(ctx, "math", "Ava", 30)
	require.NoError(t, err)
	_, err = scores.Record(ctx, "math", "Ben", 50)
	require.NoError(t, err)

	ctl := session.New(catalog.New(st.CatalogRepo()), scores, st.SettingsRepo(), puzzle.Seeded(1))
	require.NoError(t, ctl.OpenLeaderboards())

	sel := NewSelect(ctx, ctl)
	sel.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	require.Equal(t, session.StateLeaderboardView, ctl.State())

	v := NewView(ctl)
	assert.Equal(t, "Math Puzzles", v.Title())
	view := v.View(100, 34)
	assert.Contains(t, view, "Ben")
	assert.Contains(t, view, "Ava")
	assert.Less(t, strings.Index(view, "Ben"), strings.Index(view, "Ava"))

	v.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, session.StateLeaderboardSelection, ctl.State())
}

func TestEmptyBoard(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sprouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	ctl := session.New(catalog.New(st.CatalogRepo()), board.New(st.SettingsRepo()), nil, puzzle.Seeded(1))
	require.NoError(t, ctl.OpenLeaderboards())
	require.NoError(t, ctl.ViewLeaderboard(ctx, session.ModeColors))

	assert.Contains(t, NewView(ctl).View(100, 34), "No scores yet")
}
