package settings

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.typing:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Create"}}
		if kind, _ := s.kind(); kind == content.ColorItems {
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next field"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	case s.confirmDelete:
		return []layout.KeyHint{{Key: "y", Description: "Delete"}, {Key: "any", Description: "Keep"}}
	case s.tab == keyTab:
		return []layout.KeyHint{
			{Key: "←→", Description: "Tab"},
			{Key: "e", Description: "Enter key"},
			{Key: "c", Description: "Check"},
			{Key: "x", Description: "Remove"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Tab"},
		{Key: "g", Description: "Surprise"},
		{Key: "c", Description: "Name one"},
		{Key: "a/r", Description: "Approve/Reject"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Home"},
	}
}

func tabLabel(i int) string {
	if i < len(content.Kinds) {
		return content.Kinds[i].Label()
	}
	return "API key"
}

func (s *Screen) tabs() string {
	parts := make([]string, 0, keyTab+1)
	for i := 0; i <= keyTab; i++ {
		label := fmt.Sprintf(" %d %s ", i+1, tabLabel(i))
		if i == s.tab {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Sunny).Bold(true).Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (s *Screen) View(width, height int) string {
	cw := min(width-4, 96)

	var body string
	if kind, ok := s.kind(); ok {
		body = s.contentView(kind, cw, height-8)
	} else {
		body = s.keyView()
	}

	status := ""
	if s.status != "" {
		style := theme.Notice
		if s.statusErr {
			style = theme.Incorrect
		}
		status = style.Render(s.status)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		components.Stack(s.tabs(), body, status))
}

func itemLabel(item content.Item) string {
	if c, ok := item.(content.ColorItem); ok {
		return c.Color + " " + c.Name
	}
	return item.Key()
}

func (s *Screen) contentView(kind content.Kind, cw, rows int) string {
	listWidth := cw / 3
	list := s.listView(kind, listWidth, max(rows, 4))

	var panel string
	wf := s.deps.Review
	switch {
	case wf.Busy(kind):
		panel = theme.Hint.Render("🌱 Creating a new picture...")
	case wf.Pending(kind) != nil:
		c := wf.Pending(kind)
		pr := max(min(rows-4, 10), 3)
		panel = strings.Join([]string{
			components.Picture(c.Image, c.Label(), pr*2, pr),
			theme.Selected.Render(c.Label()),
			theme.Hint.Render("a approve   r reject"),
		}, "\n")
	default:
		panel = theme.Hint.Render("Nothing waiting for review.\nPress g for a surprise or c to name one.")
	}

	if s.typing {
		form := s.name.View()
		if kind == content.ColorItems {
			form += "\n" + s.color.View()
		}
		panel = form + "\n\n" + panel
	}

	right := lipgloss.NewStyle().
		Width(cw - listWidth - 4).
		Align(lipgloss.Center).
		Render(panel)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", right)
}

func (s *Screen) listView(kind content.Kind, w, rows int) string {
	items := s.items[kind]
	header := theme.Body.Bold(true).Render(fmt.Sprintf("%s (%d)", kind.Label(), len(items)))
	if len(items) == 0 {
		return listBox(header+"\n"+theme.Hint.Render("empty"), w)
	}

	visible := max(rows-3, 1)
	cur := s.cursor[kind]
	start := min(max(cur-visible/2, 0), max(len(items)-visible, 0))
	end := min(start+visible, len(items))

	lines := []string{header}
	for i := start; i < end; i++ {
		label := itemLabel(items[i])
		if i == cur {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}
	return listBox(strings.Join(lines, "\n"), w)
}

func listBox(s string, w int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(w).
		Padding(0, 1).
		Render(s)
}

func (s *Screen) keyView() string {
	state := theme.Incorrect.Render("No key saved here. The key from your environment is used if set.")
	if s.hasKey {
		state = theme.Correct.Render("✓ An API key is saved.")
	}
	return strings.Join([]string{
		state,
		"",
		theme.Hint.Render("e  enter a new key"),
		theme.Hint.Render("c  check the key in use"),
		theme.Hint.Render("x  remove the saved key"),
	}, "\n")
}
