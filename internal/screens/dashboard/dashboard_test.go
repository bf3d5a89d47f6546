package dashboard

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/catalog"
	"github.com/abhisek/sprouts/internal/leaderboard"
	"github.com/abhisek/sprouts/internal/puzzle"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/store"
)

func newController(t *testing.T) (*session.Controller, store.SettingsRepo) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sprouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	ctl := session.New(catalog.New(st.CatalogRepo()), leaderboard.New(st.SettingsRepo()), st.SettingsRepo(), puzzle.Seeded(1))
	return ctl, st.SettingsRepo()
}

func TestNameRequired(t *testing.T) {
	ctl, _ := newController(t)
	s := New(context.Background(), ctl)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, session.StateDashboard, ctl.State())
	assert.Contains(t, s.View(100, 34), "Please enter your name first!")
}

func TestLastPlayerPrefilled(t *testing.T) {
	ctl, settings := newController(t)
	ctx := context.Background()
	require.NoError(t, settings.Set(ctx, store.KeyLastPlayer, "Mia"))
	ctl.LoadLastPlayer(ctx)

	s := New(ctx, ctl)
	assert.Equal(t, "Mia", s.name.Value())
	assert.Contains(t, s.View(100, 34), "Welcome back, Mia!")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, session.StateModeSelection, ctl.State())
}

func TestMenuKeysDoNotType(t *testing.T) {
	ctl, _ := newController(t)
	s := New(context.Background(), ctl)

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, "j", s.name.Value())
	assert.Equal(t, 0, s.menu.Selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.menu.Selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, session.StateLeaderboardSelection, ctl.State())
}

func TestNoticeShown(t *testing.T) {
	ctl, _ := newController(t)
	ctx := context.Background()
	require.NoError(t, ctl.Start(ctx, "Ava"))
	require.Error(t, ctl.Enter(ctx, session.ModeColors))

	s := New(ctx, ctl)
	assert.Contains(t, s.View(100, 34), "No color items yet")
}
