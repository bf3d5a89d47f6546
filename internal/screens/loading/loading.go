// Package loading shows progress while a game's content is read and
// hands the result to the controller.
package loading

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

const frameInterval = 120 * time.Millisecond

var frames = []string{"🌱", "🌿", "🍀", "🌿"}

// DoneMsg carries the content read by Load.
type DoneMsg struct {
	Loaded *session.Loaded
	Err    error
}

type frameMsg time.Time

// Load reads the content for mode off the UI goroutine.
func Load(ctx context.Context, ctl *session.Controller, mode session.Mode, player string) tea.Cmd {
	return func() tea.Msg {
		l, err := ctl.LoadContent(ctx, mode, player)
		return DoneMsg{Loaded: l, Err: err}
	}
}

// Screen is shown in the loading state.
type Screen struct {
	ctl   *session.Controller
	frame int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a loading screen.
func New(ctl *session.Controller) *Screen {
	return &Screen{ctl: ctl}
}

func (s *Screen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (s *Screen) Title() string {
	return s.ctl.Mode().Info().Name
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case DoneMsg:
		// Failures land on the dashboard with a notice.
		_ = s.ctl.ContentLoaded(msg.Loaded, msg.Err)
		return s, nil
	case frameMsg:
		if s.ctl.State() != session.StateLoadingContent {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(frames)
		return s, tick()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(frames[s.frame] + "  Getting the " + s.ctl.Mode().Info().Name + " garden ready...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
