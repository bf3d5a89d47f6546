package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by every section of
// a screen so the boxes line up.
func ContentWidth(frameWidth int) int {
	// frame border (2) + padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// GardenFrame wraps content in a double border and centers it in the
// given area.
func GardenFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded box cw cells wide.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// Button renders a menu button; the selected one is filled.
func Button(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Sunny).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(label)
}

// Heading renders a centered bold title line cw cells wide.
func Heading(title string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Sunny).
		Bold(true).
		Render(title)
}

// Stack joins non-empty sections with a blank line between them.
func Stack(sections ...string) string {
	out := sections[:0:0]
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n\n")
}
