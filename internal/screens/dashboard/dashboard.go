// Package dashboard is the home screen: the player types a name and
// picks where to go.
package dashboard

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/screens/welcome"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

const maxNameLength = 20

// Screen is the dashboard.
type Screen struct {
	ctx  context.Context
	ctl  *session.Controller
	name components.TextInput
	menu components.Menu
	err  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard with the last player's name filled in.
func New(ctx context.Context, ctl *session.Controller) *Screen {
	s := &Screen{
		ctx:  ctx,
		ctl:  ctl,
		name: components.NewTextInput("Your name", "Type your name", maxNameLength),
	}
	s.name.SetValue(ctl.Player())
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY", Hint: "Pick a game and start growing", Action: s.play},
		{Label: "LEADERBOARDS", Hint: "See the best scores", Action: s.leaderboards},
		{Label: "SETTINGS", Hint: "Grown-ups: add new pictures", Action: s.settings},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *Screen) play() tea.Cmd {
	if err := s.ctl.Start(s.ctx, s.name.Value()); err != nil {
		s.err = content.Message(err)
	}
	return nil
}

func (s *Screen) leaderboards() tea.Cmd {
	_ = s.ctl.OpenLeaderboards()
	return nil
}

func (s *Screen) settings() tea.Cmd {
	_ = s.ctl.OpenSettings()
	return nil
}

func (s *Screen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *Screen) Title() string {
	return "Home"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "down", "enter":
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	s.err = ""
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(welcome.RenderBanner(cw, compact))

	greeting := "Hello! Who is playing today?"
	if p := s.ctl.Player(); p != "" {
		greeting = "Welcome back, " + p + "!"
	}

	var msg string
	switch {
	case s.err != "":
		msg = theme.Incorrect.Render(s.err)
	case s.ctl.Notice() != "":
		msg = theme.Notice.Render(s.ctl.Notice())
	}

	body := components.Stack(
		title,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Inherit(theme.Body).Render(greeting),
		components.Card(s.name.View(), cw),
		s.menu.View(cw),
		msg,
	)
	return components.GardenFrame(body, width, height)
}
