// Package modes lets the player pick a mini-game.
package modes

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/screens/loading"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

// Screen is the mode selection menu.
type Screen struct {
	ctx  context.Context
	ctl  *session.Controller
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the mode menu.
func New(ctx context.Context, ctl *session.Controller) *Screen {
	s := &Screen{ctx: ctx, ctl: ctl}
	items := make([]components.MenuItem, 0, len(session.Modes))
	for _, info := range session.Modes {
		items = append(items, components.MenuItem{
			Label:  info.Name,
			Hint:   info.Blurb,
			Action: s.pick(info.Mode),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) pick(mode session.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.ctl.SelectMode(mode); err != nil {
			return nil
		}
		return loading.Load(s.ctx, s.ctl, mode, s.ctl.Player())
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Choose a Game"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Inherit(theme.Body).
		Render("What shall we play, " + s.ctl.Player() + "?")

	return components.GardenFrame(components.Stack(
		components.Heading("CHOOSE A GAME", cw),
		prompt,
		s.menu.View(cw),
	), width, height)
}
