package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

// MultiChoice is a row of answer options. Arrow keys move the cursor,
// Enter or a number key picks an option.
type MultiChoice struct {
	Options  []string
	Selected int

	// Locked ignores input while feedback is showing.
	Locked bool
	// Right and Wrong mark options after an answer; -1 marks none.
	Right int
	Wrong int

	// Swatch, when set, returns a color shown next to an option.
	Swatch func(option string) string
}

// NewMultiChoice creates a chooser over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Right:   -1,
		Wrong:   -1,
	}
}

// Update handles navigation. picked is the chosen index, or -1.
func (m MultiChoice) Update(msg tea.Msg) (mc MultiChoice, picked int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Locked {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "left", "up", "h", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "right", "down", "l", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		if m.Selected < len(m.Options) {
			return m, m.Selected
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			return m, m.Selected
		}
	}
	return m, -1
}

// View renders the options side by side.
func (m MultiChoice) View() string {
	cells := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		label := strconv.Itoa(i+1) + ") " + opt
		if m.Swatch != nil {
			if hex := m.Swatch(opt); hex != "" {
				label = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + label
			}
		}

		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 2)
		switch {
		case i == m.Right:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
		case i == m.Wrong:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
		case i == m.Selected && !m.Locked:
			style = style.BorderForeground(theme.Sunny).Foreground(theme.Sunny).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}
