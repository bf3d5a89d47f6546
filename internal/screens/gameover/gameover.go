// Package gameover shows the final score of a game.
package gameover

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

// Screen is the game over summary.
type Screen struct {
	ctl  *session.Controller
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the game over screen.
func New(ctl *session.Controller) *Screen {
	s := &Screen{ctl: ctl}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			_ = s.ctl.PlayAgain()
			return nil
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			s.ctl.Home()
			return nil
		}},
	})
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Game Over"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func headline(sum *session.Summary) string {
	if sum.Reason == session.ReasonCompleted {
		return "🌻 You finished every word!"
	}
	return "🥀 Out of lives!"
}

func (s *Screen) View(width, height int) string {
	sum := s.ctl.Summary()
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	score := lipgloss.NewStyle().Foreground(theme.Sunny).Bold(true).Render(fmt.Sprintf("★ Score: %d", sum.Score))
	high := lipgloss.NewStyle().Foreground(theme.Sky).Render(fmt.Sprintf("Your best: %d", sum.HighScore))
	stats := score + "\n" + high
	if sum.NewRecord() {
		stats += "\n" + theme.Correct.Render("New best score!")
	}

	return components.GardenFrame(components.Stack(
		components.Heading(headline(sum), cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Inherit(theme.Body).
			Render(fmt.Sprintf("Well played, %s! %s, %d rounds.", sum.Player, sum.Mode.Info().Name, sum.Rounds)),
		components.Card(stats, cw),
		s.menu.View(cw),
	), width, height)
}
