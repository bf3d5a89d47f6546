package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

const bannerArt = `┌─┐┌─┐┬─┐┌─┐┬ ┬┌┬┐┌─┐
└─┐├─┘├┬┘│ ││ │ │ └─┐
└─┘┴  ┴└─└─┘└─┘ ┴ └─┘`

const bannerCompact = "S · P · R · O · U · T · S"

// RenderBanner returns the SPROUTS banner, or a one-line version when
// compact is set or the width is below the art's.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Sunny).
		Bold(true)

	if compact || width < lipgloss.Width(bannerArt) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
