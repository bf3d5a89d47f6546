// Package leaderboard shows the per-mode top scores.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

// SelectScreen lists the modes that have a leaderboard.
type SelectScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

// NewSelect creates the leaderboard menu.
func NewSelect(ctx context.Context, ctl *session.Controller) *SelectScreen {
	items := make([]components.MenuItem, 0, len(session.Modes))
	for _, info := range session.Modes {
		mode := info.Mode
		items = append(items, components.MenuItem{
			Label: info.Name,
			Action: func() tea.Cmd {
				_ = ctl.ViewLeaderboard(ctx, mode)
				return nil
			},
		})
	}
	return &SelectScreen{menu: components.NewMenu(items)}
}

func (s *SelectScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectScreen) Title() string {
	return "Leaderboards"
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Show"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	return components.GardenFrame(components.Stack(
		components.Heading("🏆 LEADERBOARDS", cw),
		s.menu.View(cw),
	), width, height)
}

// ViewScreen shows one mode's board.
type ViewScreen struct {
	ctl *session.Controller
}

var _ screen.Screen = (*ViewScreen)(nil)
var _ screen.KeyHintProvider = (*ViewScreen)(nil)

// NewView creates the board view for the controller's selected board.
func NewView(ctl *session.Controller) *ViewScreen {
	return &ViewScreen{ctl: ctl}
}

func (s *ViewScreen) Init() tea.Cmd {
	return nil
}

func (s *ViewScreen) Title() string {
	mode, _ := s.ctl.Leaderboard()
	return mode.Info().Name
}

func (s *ViewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		s.ctl.Back()
	}
	return s, nil
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("%2d", rank)
}

func (s *ViewScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	mode, entries := s.ctl.Leaderboard()

	var table string
	if len(entries) == 0 {
		table = theme.Hint.Render("No scores yet. Be the first!")
	} else {
		// rows that do not fit are dropped
		limit := max(height-10, 5)
		var lines []string
		for i, e := range entries {
			if i >= limit {
				break
			}
			name := e.Name
			if len([]rune(name)) > 20 {
				name = string([]rune(name)[:19]) + "…"
			}
			style := theme.Body
			if e.Name == s.ctl.Player() {
				style = theme.Selected
			}
			lines = append(lines, style.Render(fmt.Sprintf("%s  %-20s %5d", medal(i+1), name, e.Score)))
		}
		table = strings.Join(lines, "\n")
	}

	return components.GardenFrame(components.Stack(
		components.Heading("🏆 "+strings.ToUpper(mode.Info().Name), cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(table),
	), width, height)
}
