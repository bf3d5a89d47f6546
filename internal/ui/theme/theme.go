package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, bright garden tones
var (
	Primary   = lipgloss.Color("#22C55E") // Sprout Green
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Sunny = lipgloss.Color("#FACC15") // Yellow, highlights and score
	Sky   = lipgloss.Color("#38BDF8") // Cyan, boxes
	Heart = lipgloss.Color("#EF4444") // Red, lives
)

// Swatches maps palette color names to terminal colors for Color Quest.
var Swatches = map[string]string{
	"red":    "#EF4444",
	"blue":   "#3B82F6",
	"green":  "#22C55E",
	"yellow": "#FACC15",
	"orange": "#F97316",
	"purple": "#A855F7",
	"pink":   "#EC4899",
	"black":  "#111827",
	"white":  "#F9FAFB",
	"brown":  "#92400E",
	"gray":   "#9CA3AF",
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Notice = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	TileActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Sunny).
			Bold(true).
			Padding(0, 1)

	TileUsed = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCard).
			Padding(0, 1)

	Slot = lipgloss.NewStyle().
		Foreground(Text).
		Background(Border).
		Bold(true).
		Padding(0, 1)
)
