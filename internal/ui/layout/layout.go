package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

// The game card is at most 64 columns wide; pictures need the height.
const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the game status shown on the right of the header. A zero
// Status shows nothing.
type Status struct {
	Player string
	Score  int
	Lives  int
	InGame bool
}

// IsCompactHeight reports whether the banner and pictures should shrink.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"🌱\n\nTerminal too small!\n\nMake the window at least %d x %d.\nIt is %d x %d now.",
			MinWidth, MinHeight, width, height,
		))
}

// RenderStatus renders score and lives, or just the player's name
// outside a game.
func RenderStatus(s Status) string {
	if !s.InGame {
		if s.Player == "" {
			return ""
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("🌱 " + s.Player)
	}
	score := lipgloss.NewStyle().
		Foreground(theme.Sunny).
		Bold(true).
		Render(fmt.Sprintf("★ %d", s.Score))
	lives := lipgloss.NewStyle().
		Foreground(theme.Heart).
		Render(fmt.Sprintf("♥ %d", s.Lives))
	return score + "   " + lives
}

// RenderHeader renders the app name, the centered screen title and the
// status.
func RenderHeader(title string, status Status, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Sprouts")
	center := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)
	right := RenderStatus(status)

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders a warning, if any, followed by as many key hints
// as fit on one line.
func RenderFooter(hints []KeyHint, warning string, width int) string {
	inner := max(width-6, 0)

	line := ""
	if warning != "" {
		line = lipgloss.NewStyle().Foreground(theme.Error).Render("! " + warning)
	}
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		next := part
		if line != "" {
			next = line + "   " + part
		}
		if lipgloss.Width(next) > inner {
			break
		}
		line = next
	}
	return bar(width).Render("  " + line)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// ContentHeight is what is left of height between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
