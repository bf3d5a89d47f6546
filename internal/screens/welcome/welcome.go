// Package welcome shows a short splash while a sprout grows, then hands
// over to the dashboard.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/router"
	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	bannerAt     = 3 // growth stage at which the banner appears
)

// growth stages of the sprout, bottom line is the soil
var stages = []string{
	"\n\n\n  ▁▁▁▁▁  ",
	"\n\n    ·    \n  ▁▁▁▁▁  ",
	"\n    ,    \n    |    \n  ▁▁▁▁▁  ",
	"  \\ | /  \n   \\|/   \n    |    \n  ▁▁▁▁▁  ",
	" 🌱 | 🌱 \n   \\|/   \n    |    \n  ▁▁▁▁▁  ",
}

type tickMsg time.Time

// WelcomeScreen grows a sprout and waits for a key.
type WelcomeScreen struct {
	next         func() screen.Screen
	stage        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen
// produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.stage >= len(stages)-1 {
			return w, nil
		}
		w.stage++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sprout := lipgloss.NewStyle().Foreground(theme.Primary).Render(stages[w.stage])
	sections := []string{sprout}

	if w.stage >= bannerAt {
		sections = append(sections, "", RenderBanner(width, height < 16), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Words, numbers and colors to grow on!"))
	}
	if w.stage == len(stages)-1 {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
